package api

import (
	"net/http"
	"testing"

	"lyrah/pkg/apierr"
)

func TestDecodeEnvelopeSuccess(t *testing.T) {
	body := []byte(`{"success":true,"message":"ok","data":{"user_id":"u1"}}`)

	env, err := decodeEnvelope(http.StatusOK, body)
	if err != nil {
		t.Fatalf("decodeEnvelope: %v", err)
	}
	if !env.Success {
		t.Error("envelope should be success")
	}
	if string(env.Data) != `{"user_id":"u1"}` {
		t.Errorf("data = %s", env.Data)
	}
}

func TestDecodeEnvelopeFailure(t *testing.T) {
	body := []byte(`{"success":false,"message":"Credenciales inválidas"}`)

	_, err := decodeEnvelope(http.StatusUnauthorized, body)
	if err == nil {
		t.Fatal("expected error")
	}
	if apierr.KindOf(err) != apierr.KindServer {
		t.Errorf("kind = %v, want KindServer", apierr.KindOf(err))
	}
	if got := apierr.UserMessage(err); got != "Credenciales inválidas" {
		t.Errorf("UserMessage = %q", got)
	}
}

func TestDecodeEnvelopeErrorFieldFallback(t *testing.T) {
	// message 为空时用 error 字段
	body := []byte(`{"success":false,"error":"usuario no encontrado"}`)

	_, err := decodeEnvelope(http.StatusBadRequest, body)
	if got := apierr.UserMessage(err); got != "usuario no encontrado" {
		t.Errorf("UserMessage = %q", got)
	}
}

func TestDecodeEnvelopeNotFound(t *testing.T) {
	// 404 无论响应体是否可解析，都要能被 IsNotFound 识别
	cases := [][]byte{
		nil,
		[]byte("not found"),
		[]byte(`{"success":false,"message":"Perfil no encontrado"}`),
	}
	for _, body := range cases {
		_, err := decodeEnvelope(http.StatusNotFound, body)
		if err == nil {
			t.Fatalf("body %q: expected error", body)
		}
		if !apierr.IsNotFound(err) {
			t.Errorf("body %q: expected not-found, got %v", body, err)
		}
	}
}

func TestDecodeEnvelopeEmptyBody(t *testing.T) {
	_, err := decodeEnvelope(http.StatusOK, nil)
	if apierr.KindOf(err) != apierr.KindInvalidResponse {
		t.Errorf("kind = %v, want KindInvalidResponse", apierr.KindOf(err))
	}
}

func TestDecodeEnvelopeMalformedBody(t *testing.T) {
	_, err := decodeEnvelope(http.StatusOK, []byte("<html>"))
	if apierr.KindOf(err) != apierr.KindDecoding {
		t.Errorf("kind = %v, want KindDecoding", apierr.KindOf(err))
	}
}

func TestDecodeData(t *testing.T) {
	env, err := decodeEnvelope(http.StatusOK, []byte(`{"success":true,"data":{"token":"t1"}}`))
	if err != nil {
		t.Fatalf("decodeEnvelope: %v", err)
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := decodeData(env, &out); err != nil {
		t.Fatalf("decodeData: %v", err)
	}
	if out.Token != "t1" {
		t.Errorf("token = %q", out.Token)
	}
}

func TestDecodeDataMissing(t *testing.T) {
	env, err := decodeEnvelope(http.StatusOK, []byte(`{"success":true}`))
	if err != nil {
		t.Fatalf("decodeEnvelope: %v", err)
	}

	var out struct{}
	if err := decodeData(env, &out); apierr.KindOf(err) != apierr.KindInvalidResponse {
		t.Errorf("kind = %v, want KindInvalidResponse", apierr.KindOf(err))
	}
}
