// Package cli 是终端上的引导向导：登录/注册入口加逐分段的问卷流程。
// 所有业务判定都委托给 service 层，这里只做输入输出。
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"lyrah/internal/catalog"
	"lyrah/internal/model"
	"lyrah/internal/service"
	"lyrah/internal/store"
	"lyrah/pkg/apierr"
)

// App 终端交互入口。
type App struct {
	profiles service.ProfileAPI
	session  *service.SessionController
	store    store.Store
	log      *zap.Logger

	in *bufio.Reader
}

func New(profiles service.ProfileAPI, session *service.SessionController, st store.Store, log *zap.Logger) *App {
	return &App{
		profiles: profiles,
		session:  session,
		store:    st,
		log:      log,
		in:       bufio.NewReader(os.Stdin),
	}
}

// Run 主循环：先保证已登录，再按需要走引导流程。
func (a *App) Run(ctx context.Context) error {
	for a.session.State().Kind != service.AuthAuthenticated {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if done, err := a.authMenu(ctx); err != nil {
			return err
		} else if done {
			return nil
		}
	}

	user := a.session.CurrentUser()
	fmt.Printf("\nHola, %s.\n", user.Username)

	if a.session.Onboarding() == service.OnboardingNotStarted {
		if err := a.runOnboarding(ctx); err != nil {
			return err
		}
	} else {
		a.showProfile(ctx)
	}

	fmt.Println("\nHasta pronto.")
	return nil
}

// authMenu 未登录时的菜单。第一个返回值为 true 表示用户选择退出。
func (a *App) authMenu(ctx context.Context) (bool, error) {
	fmt.Println("\n1) Iniciar sesión")
	fmt.Println("2) Crear cuenta")
	fmt.Println("3) Salir")

	switch a.readLine("> ") {
	case "1":
		a.login(ctx)
	case "2":
		a.register(ctx)
	case "3":
		return true, nil
	}
	return false, nil
}

func (a *App) login(ctx context.Context) {
	identifier := a.readLine("Email o nombre de usuario: ")
	password := a.readPassword("Contraseña: ")

	if err := a.session.Login(ctx, identifier, password); err != nil {
		a.showAuthError(err)
	}
}

func (a *App) register(ctx context.Context) {
	username := a.readLine("Nombre de usuario: ")
	email := a.readLine("Email: ")
	password := a.readPassword("Contraseña (mínimo 6 caracteres): ")

	if err := a.session.Register(ctx, username, email, password); err != nil {
		a.showAuthError(err)
	}
}

func (a *App) showAuthError(err error) {
	if service.IsValidation(err) {
		fmt.Println(err.Error())
		return
	}

	fmt.Println(a.session.State().Message)
	a.session.ResetError()
}

func (a *App) showProfile(ctx context.Context) {
	profile, err := a.profiles.GetProfile(ctx, a.session.UserID())
	if err != nil || profile == nil {
		return
	}

	fmt.Printf("Tu perfil: %s %s\n", profile.FirstName, profile.LastName)
	for _, area := range profile.ImprovementAreas {
		fmt.Printf("  - %s\n", area.Name)
	}
}

// runOnboarding 逐分段执行引导流程，最后一段触发提交，失败后可重试。
func (a *App) runOnboarding(ctx context.Context) error {
	c := service.NewOnboardingController(ctx, a.profiles, a.store, a.session, a.log)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		section := c.CurrentSection()
		fmt.Printf("\n=== %s (%.0f%%) ===\n", section.Title(), c.Progress()*100)

		a.fillSection(ctx, c, section)

		if !c.CanAdvance() {
			fmt.Println("Completa esta sección para continuar.")
			continue
		}

		last := c.IsLastSection()
		if err := c.MoveToNextSection(ctx); err != nil {
			fmt.Println(apierr.UserMessage(err))
			if a.readLine("¿Reintentar? (s/n): ") != "s" {
				fmt.Println("Tus respuestas quedaron guardadas, puedes continuar más tarde.")
				return nil
			}
			continue
		}

		if last {
			fmt.Println("\n¡Listo! Tu perfil fue creado.")
			return nil
		}
	}
}

func (a *App) fillSection(ctx context.Context, c *service.OnboardingController, section model.Section) {
	switch section.Kind {
	case model.SectionWelcome:
		fmt.Println("Vamos a conocerte un poco. Presiona Enter para comenzar.")
		a.readLine("")

	case model.SectionName:
		first := a.readLine("Nombre: ")
		last := a.readLine("Apellido: ")
		c.UpdateName(ctx, first, last)

	case model.SectionAge:
		if i, ok := a.pickOne("Selecciona tu rango de edad:", ageLabels()); ok {
			c.UpdateAgeRange(ctx, model.AgeRanges[i])
		}

	case model.SectionGender:
		if i, ok := a.pickOne("Selecciona tu género:", genderLabels()); ok {
			c.UpdateGender(ctx, model.GenderOptions[i])
		}

	case model.SectionImprovementAreas:
		a.pickAreas(ctx, c)

	case model.SectionSurvey:
		a.fillSurveySection(ctx, c, section.SurveyNumber)

	case model.SectionConsent:
		fmt.Println("Para continuar necesitamos tu consentimiento para procesar tus respuestas.")
		c.UpdateConsent(ctx, a.readLine("¿Aceptas? (s/n): ") == "s")
	}
}

func (a *App) pickAreas(ctx context.Context, c *service.OnboardingController) {
	options := catalog.ImprovementAreaOptions()
	fmt.Println("¿Qué te gustaría mejorar? Elige una o varias opciones en orden de prioridad.")
	for i, o := range options {
		fmt.Printf("  %d) %s\n", i+1, o.Name)
	}

	for {
		line := a.readLine("Número (Enter para terminar): ")
		if line == "" {
			return
		}
		i, err := strconv.Atoi(line)
		if err != nil || i < 1 || i > len(options) {
			fmt.Println("Opción inválida.")
			continue
		}
		c.AddArea(ctx, options[i-1])
	}
}

func (a *App) fillSurveySection(ctx context.Context, c *service.OnboardingController, n int) {
	draft := c.Draft()
	for _, q := range catalog.QuestionsForSurveySection(n) {
		if _, answered := draft.ResponseFor(q.ID); answered {
			continue
		}

		labels := make([]string, len(q.Options))
		for i, o := range q.Options {
			labels[i] = o.Text
		}

		if i, ok := a.pickOne(q.Text, labels); ok {
			opt := q.Options[i]
			c.AddOrReplaceSurveyResponse(ctx, q.ID, opt.ID, opt.Score)
		}
	}
}

// pickOne 打印编号列表并读取一个合法序号，返回下标。
func (a *App) pickOne(prompt string, options []string) (int, bool) {
	fmt.Println(prompt)
	for i, o := range options {
		fmt.Printf("  %d) %s\n", i+1, o)
	}

	for {
		line := a.readLine("> ")
		if line == "" {
			return 0, false
		}
		i, err := strconv.Atoi(line)
		if err != nil || i < 1 || i > len(options) {
			fmt.Println("Opción inválida.")
			continue
		}
		return i - 1, true
	}
}

func (a *App) readLine(prompt string) string {
	fmt.Print(prompt)
	line, _ := a.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// readPassword 终端下关闭回显读取密码，stdin 不是终端时退回普通读取。
func (a *App) readPassword(prompt string) string {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return a.readLine(prompt)
	}

	fmt.Print(prompt)
	password, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return ""
	}
	return string(password)
}

func ageLabels() []string {
	labels := make([]string, len(model.AgeRanges))
	for i, r := range model.AgeRanges {
		labels[i] = string(r)
	}
	return labels
}

func genderLabels() []string {
	labels := make([]string, len(model.GenderOptions))
	for i, g := range model.GenderOptions {
		labels[i] = string(g)
	}
	return labels
}
