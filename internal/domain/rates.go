package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// convertPrecision é a precisão intermediária das conversões. Oito casas
// garantem que a ida e volta A→B→A não acumule desvio maior que 0.01.
const convertPrecision = 8

// RateSet é a tabela de multiplicadores moeda→moeda de referência vigente
// em um dia. Conjuntos históricos são imutáveis: uma vez gravados, a
// consulta para aquele dia é determinística e repetível.
type RateSet struct {
	Date      time.Time                  `json:"date"`
	Reference string                     `json:"reference"`
	Rates     map[string]decimal.Decimal `json:"rates"`
}

// RateFor retorna o multiplicador para converter a moeda informada na
// moeda de referência do conjunto.
func (rs *RateSet) RateFor(currency string) (decimal.Decimal, bool) {
	if currency == rs.Reference {
		return decimal.NewFromInt(1), true
	}
	rate, ok := rs.Rates[currency]
	return rate, ok
}

// Convert converte um valor entre duas moedas usando um RateSet específico.
// Função pura, sem I/O: o chamador escolhe o conjunto de taxas (histórico
// ou corrente) e conversões em lote nunca buscam taxas dentro do loop.
func Convert(amount decimal.Decimal, from, to string, rs *RateSet) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}

	if rs == nil {
		return decimal.Zero, fmt.Errorf("conjunto de taxas não informado para conversão %s->%s", from, to)
	}

	fromRate, ok := rs.RateFor(from)
	if !ok {
		return decimal.Zero, fmt.Errorf("taxa não encontrada para a moeda %s", from)
	}

	toRate, ok := rs.RateFor(to)
	if !ok {
		return decimal.Zero, fmt.Errorf("taxa não encontrada para a moeda %s", to)
	}

	if toRate.IsZero() {
		return decimal.Zero, fmt.Errorf("taxa zerada para a moeda %s", to)
	}

	// amount * taxa(from) leva à moeda de referência; dividir por taxa(to)
	// leva à moeda de destino
	return amount.Mul(fromRate).DivRound(toRate, convertPrecision), nil
}
