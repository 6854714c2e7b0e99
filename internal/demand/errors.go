package demand

import "errors"

var (
	// ErrEmptyHistory indica que a loja não possui registros históricos; não há média para prever
	ErrEmptyHistory = errors.New("loja sem histórico de vendas")
	// ErrUndefinedRatio indica variação percentual sobre uma média histórica igual a zero
	ErrUndefinedRatio = errors.New("variação percentual indefinida para média zero")
	// ErrUnknownModelVariant indica uma formulação de modelo não suportada
	ErrUnknownModelVariant = errors.New("variante de modelo desconhecida")
	// ErrUnknownDimension indica uma dimensão fora do conjunto suportado
	ErrUnknownDimension = errors.New("dimensão desconhecida")
)
