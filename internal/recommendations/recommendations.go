// Package recommendations turns a topic and a few typed answers into a
// canned piece of advice. Everything here is pure: no state, no I/O.
package recommendations

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Topic identifies a recommendation domain. Its value doubles as the route
// path segment.
type Topic string

const (
	StudyOrganization  Topic = "organizacion"
	EmotionalWellbeing Topic = "bienestar_emocional"
	TimeManagement     Topic = "gestion_tiempo"
	SpiritualGrowth    Topic = "crecimiento_espiritual"
	HabitDevelopment   Topic = "desarrollo_habitos"
	PurposeReflection  Topic = "reflexion_proposito"
)

// Topics lists every topic in menu order.
var Topics = []Topic{
	StudyOrganization,
	TimeManagement,
	EmotionalWellbeing,
	SpiritualGrowth,
	HabitDevelopment,
	PurposeReflection,
}

var (
	// ErrUnknownTopic is returned by Parse for a topic outside Topics.
	ErrUnknownTopic = errors.New("unknown recommendation topic")
	ErrMissingValue = errors.New("required")
	ErrNotInteger   = errors.New("must be an integer")
)

// Input is the validated answer set of one topic's form.
type Input interface {
	Topic() Topic
	Advice() string
}

// FieldError reports a form value that could not be converted.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Generate returns the advice for in.
func Generate(in Input) string {
	return in.Advice()
}

// CacheKey returns a stable key identifying the advice of in.
func CacheKey(in Input) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%#v", in)))
	return "recommendation:" + string(in.Topic()) + ":" + hex.EncodeToString(sum[:])
}

// Parse builds the Input of topic from submitted form values. Only type
// conversion happens here; range checks are expressed as validate tags on
// the returned struct.
func Parse(topic Topic, form url.Values) (Input, error) {
	get := func(key string) string {
		return strings.TrimSpace(form.Get(key))
	}

	switch topic {
	case StudyOrganization:
		hours, err := atoi(form, "horas")
		if err != nil {
			return nil, err
		}
		return StudyPlan{Subject: get("materia"), Hours: hours, Goal: get("objetivo")}, nil
	case TimeManagement:
		hours, err := atoi(form, "horas_libres")
		if err != nil {
			return nil, err
		}
		return TimePlan{FreeHours: hours, Priority: get("prioridad")}, nil
	case EmotionalWellbeing:
		stress, err := atoi(form, "nivel_estres")
		if err != nil {
			return nil, err
		}
		return MoodCheck{Mood: get("estado_animo"), StressLevel: stress}, nil
	case SpiritualGrowth:
		minutes, err := atoi(form, "minutos")
		if err != nil {
			return nil, err
		}
		return SpiritualPractice{Practice: get("practica"), Minutes: minutes}, nil
	case HabitDevelopment:
		days, err := atoi(form, "dias")
		if err != nil {
			return nil, err
		}
		return HabitPlan{Habit: get("habito"), Days: days}, nil
	case PurposeReflection:
		return PurposeStatement{Values: get("valores"), Goal: get("meta")}, nil
	default:
		return nil, ErrUnknownTopic
	}
}

func atoi(form url.Values, key string) (int, error) {
	raw := strings.TrimSpace(form.Get(key))
	if raw == "" {
		return 0, &FieldError{Field: key, Err: ErrMissingValue}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &FieldError{Field: key, Err: ErrNotInteger}
	}
	return n, nil
}

// StudyPlan is the input of the study organization topic.
type StudyPlan struct {
	Subject string `form:"materia" validate:"required,max=100"`
	Hours   int    `form:"horas" validate:"gte=0,lte=24"`
	Goal    string `form:"objetivo" validate:"max=200"`
}

func (StudyPlan) Topic() Topic { return StudyOrganization }

func (p StudyPlan) Advice() string {
	switch {
	case p.Hours < 2:
		return fmt.Sprintf("Te recomendamos estudiar al menos 2 horas diarias para obtener buenos resultados en %s. "+
			"Recuerda hacer pausas cada 25 minutos: eso te ayudará a ordenar la información.", p.Subject)
	case p.Hours <= 4:
		return fmt.Sprintf("Con %d horas al día puedes lograr tu objetivo en %s. "+
			"Organiza tu estudio en bloques de 40 minutos con 10 minutos de descanso.", p.Hours, p.Subject)
	default:
		goal := p.Goal
		if goal == "" {
			goal = p.Subject
		}
		return fmt.Sprintf("¡Excelente compromiso! Con %d horas al día alcanzarás tu objetivo '%s' rápidamente. "+
			"No olvides repasar cada uno o dos días para afianzar el conocimiento.", p.Hours, goal)
	}
}

// TimePlan is the input of the time management topic.
type TimePlan struct {
	FreeHours int    `form:"horas_libres" validate:"gte=0,lte=24"`
	Priority  string `form:"prioridad" validate:"required,max=100"`
}

func (TimePlan) Topic() Topic { return TimeManagement }

func (p TimePlan) Advice() string {
	switch {
	case p.FreeHours == 0:
		return fmt.Sprintf("Tu agenda está llena. Revisa qué actividades puedes delegar o posponer "+
			"para abrir al menos 30 minutos diarios para %s.", p.Priority)
	case p.FreeHours <= 3:
		return fmt.Sprintf("Reserva tu primera hora libre del día para %s y protégela como una cita. "+
			"Usa el resto para descansar.", p.Priority)
	default:
		return fmt.Sprintf("Tienes %d horas libres: divide el día en bloques, dedica los dos primeros a %s "+
			"y planifica la semana cada domingo.", p.FreeHours, p.Priority)
	}
}

// MoodCheck is the input of the emotional wellbeing topic.
type MoodCheck struct {
	Mood        string `form:"estado_animo" validate:"required,max=50"`
	StressLevel int    `form:"nivel_estres" validate:"gte=1,lte=10"`
}

func (MoodCheck) Topic() Topic { return EmotionalWellbeing }

func (m MoodCheck) Advice() string {
	switch {
	case m.StressLevel >= 8:
		return fmt.Sprintf("Te sientes %s y tu nivel de estrés es alto. Detente unos minutos, respira profundo "+
			"y considera conversar con alguien de confianza o con el servicio de apoyo de tu institución.", m.Mood)
	case m.StressLevel >= 5:
		return fmt.Sprintf("Te sientes %s. Intercala pausas activas en tu estudio y cuida tus horas de sueño "+
			"para mantener el estrés bajo control.", m.Mood)
	default:
		return fmt.Sprintf("Te sientes %s y con poco estrés. ¡Buen momento! Anota qué te está funcionando "+
			"para repetirlo en semanas exigentes.", m.Mood)
	}
}

// SpiritualPractice is the input of the spiritual growth topic.
type SpiritualPractice struct {
	Practice string `form:"practica" validate:"required,max=100"`
	Minutes  int    `form:"minutos" validate:"gte=0,lte=1440"`
}

func (SpiritualPractice) Topic() Topic { return SpiritualGrowth }

func (p SpiritualPractice) Advice() string {
	if p.Minutes < 10 {
		return fmt.Sprintf("Empieza con 10 minutos diarios de %s a la misma hora. "+
			"La constancia importa más que la duración.", p.Practice)
	}
	return fmt.Sprintf("Dedicas %d minutos a %s. Lleva un diario breve de lo que descubres "+
		"en cada sesión para ver tu crecimiento.", p.Minutes, p.Practice)
}

// HabitPlan is the input of the habit development topic.
type HabitPlan struct {
	Habit string `form:"habito" validate:"required,max=100"`
	Days  int    `form:"dias" validate:"gte=0,lte=3650"`
}

func (HabitPlan) Topic() Topic { return HabitDevelopment }

func (p HabitPlan) Advice() string {
	switch {
	case p.Days < 21:
		return fmt.Sprintf("Llevas %d días con %s. Asócialo a algo que ya haces cada día "+
			"y marca tu avance en un calendario visible.", p.Days, p.Habit)
	case p.Days < 66:
		return fmt.Sprintf("¡%d días con %s! Ya estás formando el hábito. "+
			"Si fallas un día, retómalo al siguiente sin culpa.", p.Days, p.Habit)
	default:
		return fmt.Sprintf("%s ya es parte de tu rutina tras %d días. "+
			"Es un buen momento para sumar un nuevo hábito.", p.Habit, p.Days)
	}
}

// PurposeStatement is the input of the purpose reflection topic.
type PurposeStatement struct {
	Values string `form:"valores" validate:"required,max=200"`
	Goal   string `form:"meta" validate:"required,max=200"`
}

func (PurposeStatement) Topic() Topic { return PurposeReflection }

func (p PurposeStatement) Advice() string {
	return fmt.Sprintf("Tu meta \"%s\" se apoya en lo que valoras: %s. "+
		"Cada semana pregúntate qué acción concreta te acercó a ella y cuál te alejó.", p.Goal, p.Values)
}
