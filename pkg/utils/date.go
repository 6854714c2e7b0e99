package utils

import (
	"fmt"
	"strings"
	"time"
)

// Formatos aceitos para datas do dataset, sempre com o dia antes do mês
var dayFirstLayouts = []string{
	"02-01-2006",
	"02/01/2006",
	"2-1-2006",
	"2/1/2006",
	time.DateOnly,
}

// ParseDayFirstDate interpreta datas no formato dia-mês-ano (ex: 05-02-2010 é 5 de fevereiro)
func ParseDayFirstDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)

	for _, layout := range dayFirstLayouts {
		date, err := time.Parse(layout, dateStr)
		if err == nil {
			return date, nil
		}
	}

	return time.Time{}, fmt.Errorf("data inválida: %q", dateStr)
}
