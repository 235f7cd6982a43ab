package reporting

import "github.com/pkg/errors"

var (
	// ErrInvalidPeriod indica uma tag de período desconhecida ou um
	// intervalo explícito malformado
	ErrInvalidPeriod = errors.New("período solicitado inválido")

	// ErrTransientStore indica falha na consulta da base de pedidos. É o
	// único erro reapresentado ao chamador como novo-tentável; o cache
	// nunca é tocado quando ele ocorre.
	ErrTransientStore = errors.New("falha transitória na consulta da base de pedidos")
)
