package domain

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Tags simbólicas de período aceitas pelo dashboard
const (
	PeriodLastDay      = "last_day"
	PeriodLast7Days    = "last_7_days"
	PeriodLast30Days   = "last_30_days"
	PeriodLast90Days   = "last_90_days"
	PeriodCurrentMonth = "current_month"
)

// FallbackTimezone é o último recurso quando o fuso recebido é vazio ou
// inválido; o caminho normal usa o fuso de referência da configuração.
// Os dias são alinhados a este fuso, não a UTC.
const FallbackTimezone = "America/Sao_Paulo"

// periodDays mapeia tags simbólicas para a quantidade fixa de dias
// terminando em "agora"
var periodDays = map[string]int{
	PeriodLastDay:    1,
	PeriodLast7Days:  7,
	PeriodLast30Days: 30,
	PeriodLast90Days: 90,
}

// ValidPeriodTag indica se a tag simbólica é reconhecida
func ValidPeriodTag(tag string) bool {
	if tag == PeriodCurrentMonth {
		return true
	}
	_, ok := periodDays[tag]
	return ok
}

// DateRange é um par de instantes absolutos em UTC, com From no início do
// dia e To no fim do dia no fuso da operação.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Days retorna a quantidade de dias-calendário cobertos pelo intervalo
func (r DateRange) Days() int {
	return int(r.To.Sub(r.From).Hours()/24) + 1
}

// Previous deriva o intervalo imediatamente anterior de mesma duração,
// usado na comparação de crescimento período a período.
func (r DateRange) Previous() DateRange {
	span := r.To.Sub(r.From)
	to := r.From.Add(-time.Second)
	return DateRange{From: to.Add(-span), To: to}
}

// loadLocation resolve o fuso IANA da operação, caindo no fuso de
// referência quando ausente ou inválido
func loadLocation(timezone string) *time.Location {
	if timezone == "" {
		timezone = FallbackTimezone
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		logrus.WithError(err).WithField("timezone", timezone).
			Warnf("Fuso horário inválido, usando fallback %s", FallbackTimezone)
		loc, err = time.LoadLocation(FallbackTimezone)
		if err != nil {
			// tzdata ausente no ambiente; UTC é o último recurso
			logrus.WithError(err).Error("Fuso de fallback indisponível, usando UTC")
			return time.UTC
		}
	}

	return loc
}

// startOfDay e endOfDay alinham um instante aos limites do dia no fuso dado
func startOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

func endOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 23, 59, 59, 0, loc)
}

// ResolvePeriod converte uma tag simbólica em um intervalo absoluto UTC,
// honrando o fuso da operação no alinhamento dos limites de dia.
func ResolvePeriod(tag string, timezone string, now time.Time) (DateRange, error) {
	loc := loadLocation(timezone)

	localNow := now.In(loc)
	to := endOfDay(localNow, loc)

	var from time.Time
	if tag == PeriodCurrentMonth {
		from = time.Date(localNow.Year(), localNow.Month(), 1, 0, 0, 0, 0, loc)
	} else {
		days, ok := periodDays[tag]
		if !ok {
			return DateRange{}, fmt.Errorf("período inválido: %s", tag)
		}
		from = startOfDay(localNow.AddDate(0, 0, -(days-1)), loc)
	}

	return DateRange{From: from.UTC(), To: to.UTC()}, nil
}

// ResolveRange converte um par explícito de datas (sem hora) em um
// intervalo absoluto UTC alinhado aos limites de dia no fuso da operação.
// Intervalos explícitos têm precedência sobre tags simbólicas e nunca
// passam pelo cache.
func ResolveRange(from, to time.Time, timezone string) (DateRange, error) {
	if from.After(to) {
		return DateRange{}, fmt.Errorf("a data de início não pode ser posterior à data de fim")
	}

	loc := loadLocation(timezone)
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)
	end := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, loc)

	return DateRange{From: start.UTC(), To: end.UTC()}, nil
}
