package catalog

// Option 题目的一个备选项，分值固定。
type Option struct {
	ID    int    `json:"option_id"`
	Text  string `json:"option_text"`
	Score int    `json:"score"`
}

// Question 问卷题目。
type Question struct {
	ID            int      `json:"question_id"`
	Text          string   `json:"question_text"`
	SectionNumber int      `json:"section_number"`
	Options       []Option `json:"options"`
}

// 题库来自 Test Bienvenida Lyrah 3.0，按问卷分区分组。
var surveyQuestions = map[int][]Question{
	2: { // Bienestar Emocional y Mental
		{ID: 5, Text: "¿Cómo describirías tu sueño en el último mes?", SectionNumber: 2, Options: []Option{
			{ID: 501, Text: "Reparador, duermo bien y despierto con energía", Score: 10},
			{ID: 502, Text: "Regular, a veces me cuesta dormir o me despierto cansado/a", Score: 5},
			{ID: 503, Text: "Deficiente, duermo mal o tengo insomnio frecuente", Score: 0},
		}},
		{ID: 6, Text: "¿Cómo ha sido tu estado de ánimo en el último mes?", SectionNumber: 2, Options: []Option{
			{ID: 601, Text: "Estable y positivo", Score: 10},
			{ID: 602, Text: "Con altibajos", Score: 5},
			{ID: 603, Text: "Predominantemente negativo", Score: 0},
		}},
		{ID: 7, Text: "¿Cómo percibes tu nivel de energía en el día a día?", SectionNumber: 2, Options: []Option{
			{ID: 701, Text: "Alta y constante", Score: 10},
			{ID: 702, Text: "Variable, con momentos de cansancio", Score: 5},
			{ID: 703, Text: "Baja la mayor parte del tiempo", Score: 2},
			{ID: 704, Text: "Muy baja, me siento agotado/a constantemente", Score: 0},
		}},
	},
	3: { // Bienestar Físico y Vitalidad
		{ID: 8, Text: "¿Cómo describirías tu estado de salud y bienestar físico en general?", SectionNumber: 3, Options: []Option{
			{ID: 801, Text: "Excelente, cuido mi alimentación y me mantengo activo/a", Score: 10},
			{ID: 802, Text: "Regular, intento mantenerme saludable pero no siempre lo logro", Score: 5},
			{ID: 803, Text: "Deficiente, me gustaría mejorar mis hábitos de salud", Score: 0},
		}},
		{ID: 9, Text: "¿Cuántas horas duermes en promedio?", SectionNumber: 3, Options: []Option{
			{ID: 901, Text: "Menos de 5 horas", Score: 0},
			{ID: 902, Text: "Entre 5 y 6 horas", Score: 5},
			{ID: 903, Text: "Entre 7 y 8 horas", Score: 7},
			{ID: 904, Text: "Entre 9 y 10 horas", Score: 8},
			{ID: 905, Text: "Más de 10 horas", Score: 10},
		}},
		{ID: 10, Text: "¿Con qué frecuencia realizas actividad física moderada o intensa?", SectionNumber: 3, Options: []Option{
			{ID: 1001, Text: "Todos los días o casi todos los días", Score: 10},
			{ID: 1002, Text: "3-5 veces por semana", Score: 7},
			{ID: 1003, Text: "1-2 veces por semana", Score: 5},
			{ID: 1004, Text: "Rara vez o nunca", Score: 0},
		}},
		{ID: 11, Text: "¿Cómo describirías tu alimentación en general?", SectionNumber: 3, Options: []Option{
			{ID: 1101, Text: "Equilibrada y nutritiva", Score: 10},
			{ID: 1102, Text: "Regular, trato de comer saludable pero tengo hábitos que mejorar", Score: 5},
			{ID: 1103, Text: "Poco saludable, tengo malos hábitos alimenticios", Score: 0},
		}},
	},
	4: { // Conexión Espiritual y Energética
		{ID: 12, Text: "¿Cómo describirías tu conexión espiritual o sentido de propósito?", SectionNumber: 4, Options: []Option{
			{ID: 1201, Text: "Fuerte, siento que tengo un propósito claro en la vida", Score: 10},
			{ID: 1202, Text: "Intermedia, busco respuestas pero aún no las encuentro completamente", Score: 5},
			{ID: 1203, Text: "Débil o nula, no suelo enfocarme en estos temas", Score: 0},
		}},
		{ID: 13, Text: "¿Practicas la gratitud de manera consciente en tu vida?", SectionNumber: 4, Options: []Option{
			{ID: 1301, Text: "Sí, todos los días o casi todos los días", Score: 10},
			{ID: 1302, Text: "Ocasionalmente, pero no con regularidad", Score: 5},
			{ID: 1303, Text: "No, casi nunca o nunca", Score: 0},
		}},
		{ID: 14, Text: "¿Sientes que tu vida tiene un propósito claro?", SectionNumber: 4, Options: []Option{
			{ID: 1401, Text: "Sí, tengo claridad sobre mi propósito", Score: 10},
			{ID: 1402, Text: "Más o menos, aún lo estoy explorando", Score: 5},
			{ID: 1403, Text: "No, no siento que tenga un propósito definido", Score: 0},
		}},
	},
	5: { // Relaciones Personales y Sociales
		{ID: 15, Text: "¿Cómo percibes tus relaciones personales? (Amistades y entorno social)", SectionNumber: 5, Options: []Option{
			{ID: 1501, Text: "Satisfactorias, tengo relaciones sólidas y enriquecedoras", Score: 10},
			{ID: 1502, Text: "Neutras, me gustaría fortalecer mis amistades", Score: 5},
			{ID: 1503, Text: "Distantes, siento que me cuesta conectar con los demás", Score: 0},
		}},
		{ID: 16, Text: "¿Cómo percibes tus relaciones amorosas?", SectionNumber: 5, Options: []Option{
			{ID: 1601, Text: "Plenas, mi relación me aporta bienestar y crecimiento", Score: 10},
			{ID: 1602, Text: "Estables, pero con áreas que podrían mejorar", Score: 5},
			{ID: 1603, Text: "En búsqueda o en proceso de mejora personal en este aspecto", Score: 0},
		}},
		{ID: 17, Text: "¿Qué tan a menudo te sientes apoyado/a por tus amigos o familiares?", SectionNumber: 5, Options: []Option{
			{ID: 1701, Text: "Siempre, tengo una red de apoyo sólida", Score: 10},
			{ID: 1702, Text: "A veces, pero me gustaría mejorar mis relaciones", Score: 5},
			{ID: 1703, Text: "Rara vez o nunca, me siento solo/a", Score: 0},
		}},
		{ID: 18, Text: "¿Qué tan efectiva es tu comunicación en tus relaciones?", SectionNumber: 5, Options: []Option{
			{ID: 1801, Text: "Buena, sé expresar mis ideas y emociones", Score: 10},
			{ID: 1802, Text: "Regular, a veces me cuesta comunicarme bien", Score: 5},
			{ID: 1803, Text: "Deficiente, me cuesta mucho expresar lo que siento", Score: 0},
		}},
	},
	6: { // Crecimiento y Desarrollo Personal
		{ID: 19, Text: "¿Te sientes alineado/a con tus objetivos y crecimiento personal?", SectionNumber: 6, Options: []Option{
			{ID: 1901, Text: "Totalmente alineado/a, con claridad en mis metas", Score: 10},
			{ID: 1902, Text: "Tengo algunas ideas, pero aún no defino mi camino", Score: 5},
			{ID: 1903, Text: "Me gustaría encontrar más claridad y enfoque", Score: 0},
		}},
		{ID: 20, Text: "¿Qué tan seguido adquieres nuevas habilidades o conocimientos para tu desarrollo profesional?", SectionNumber: 6, Options: []Option{
			{ID: 2001, Text: "Constantemente, invierto en cursos y aprendizaje", Score: 10},
			{ID: 2002, Text: "De vez en cuando, pero no con frecuencia", Score: 5},
			{ID: 2003, Text: "No lo hago, no me actualizo en mi área", Score: 0},
		}},
	},
	7: { // Salud Financiera y Económica
		{ID: 21, Text: "¿Cómo sientes tu situación financiera actual?", SectionNumber: 7, Options: []Option{
			{ID: 2101, Text: "Satisfactoria y estable", Score: 10},
			{ID: 2102, Text: "Neutra, podría mejorar", Score: 5},
			{ID: 2103, Text: "Inestable o preocupante", Score: 0},
		}},
		{ID: 22, Text: "¿Qué tanto control sientes que tienes sobre tus finanzas?", SectionNumber: 7, Options: []Option{
			{ID: 2201, Text: "Totalmente organizado/a", Score: 10},
			{ID: 2202, Text: "Algo de control, pero con áreas de mejora", Score: 5},
			{ID: 2203, Text: "Me gustaría aprender a gestionarlas mejor", Score: 0},
		}},
		{ID: 23, Text: "¿Tienes un fondo de ahorro para emergencias?", SectionNumber: 7, Options: []Option{
			{ID: 2301, Text: "Sí, cubre al menos 6 meses de mis gastos", Score: 10},
			{ID: 2302, Text: "Sí, pero es menor a 6 meses de gastos", Score: 5},
			{ID: 2303, Text: "No tengo un fondo de ahorro", Score: 0},
		}},
		{ID: 24, Text: "¿Cómo manejas tus deudas y compromisos financieros?", SectionNumber: 7, Options: []Option{
			{ID: 2401, Text: "No tengo deudas o las manejo bien sin problemas", Score: 10},
			{ID: 2402, Text: "Tengo algunas deudas, pero las controlo moderadamente", Score: 5},
			{ID: 2403, Text: "Tengo muchas deudas y me cuesta administrarlas", Score: 0},
		}},
	},
	8: { // Estabilidad y Satisfacción Profesional
		{ID: 25, Text: "¿Cómo percibes tu estabilidad laboral y profesional?", SectionNumber: 8, Options: []Option{
			{ID: 2501, Text: "Estable y en crecimiento", Score: 10},
			{ID: 2502, Text: "Neutra, sin cambios significativos", Score: 5},
			{ID: 2503, Text: "En transición o explorando nuevas oportunidades", Score: 0},
		}},
		{ID: 26, Text: "¿Te sientes satisfecho/a con tu trabajo o actividad actual?", SectionNumber: 8, Options: []Option{
			{ID: 2601, Text: "Sí, me gusta lo que hago y veo crecimiento", Score: 10},
			{ID: 2602, Text: "Es neutral, pero no me desagrada", Score: 5},
			{ID: 2603, Text: "No me gusta, me gustaría cambiar de trabajo o actividad", Score: 0},
		}},
	},
	9: { // Desarrollo Educativo y Personal
		{ID: 27, Text: "¿Cuánto tiempo dedicas a actividades recreativas o hobbies?", SectionNumber: 9, Options: []Option{
			{ID: 2701, Text: "Varias veces por semana", Score: 10},
			{ID: 2702, Text: "Ocasionalmente, pero no con frecuencia", Score: 5},
			{ID: 2703, Text: "Casi nunca o nunca", Score: 0},
		}},
		{ID: 28, Text: "¿Te permites momentos de descanso y disfrute sin sentirte culpable?", SectionNumber: 9, Options: []Option{
			{ID: 2801, Text: "Sí, sé equilibrar el trabajo y el ocio", Score: 10},
			{ID: 2802, Text: "A veces, pero me cuesta desconectarme", Score: 5},
			{ID: 2803, Text: "No, siento que siempre estoy ocupado/a", Score: 0},
		}},
		{ID: 29, Text: "¿Cómo calificas el entorno en el que vives (hogar, vecindario, ciudad)?", SectionNumber: 9, Options: []Option{
			{ID: 2901, Text: "Cómodo y agradable", Score: 10},
			{ID: 2902, Text: "Aceptable, pero hay cosas que mejorar", Score: 5},
			{ID: 2903, Text: "Incómodo o poco satisfactorio", Score: 0},
		}},
		{ID: 30, Text: "¿Qué tan ordenado/a te sientes en tu vida diaria?", SectionNumber: 9, Options: []Option{
			{ID: 3001, Text: "Muy ordenado/a, tengo hábitos organizados", Score: 10},
			{ID: 3002, Text: "Más o menos, pero a veces me desorganizo", Score: 5},
			{ID: 3003, Text: "Nada ordenado/a, me cuesta gestionar mis cosas", Score: 0},
		}},
		{ID: 31, Text: "¿Cómo manejas el equilibrio entre vida personal y responsabilidades?", SectionNumber: 9, Options: []Option{
			{ID: 3101, Text: "Tengo un buen balance entre trabajo, descanso y vida personal", Score: 10},
			{ID: 3102, Text: "A veces me cuesta desconectarme del trabajo o las responsabilidades", Score: 5},
			{ID: 3103, Text: "Me siento sobrecargado/a y sin suficiente tiempo para mí", Score: 0},
		}},
	},
}
