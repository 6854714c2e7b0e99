package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/demand-forecast-api/internal/domain"
	"github.com/vfg2006/demand-forecast-api/internal/usecases/forecasting"
	"github.com/vfg2006/demand-forecast-api/pkg/apiErrors"
)

// GetStores retorna a faixa de lojas disponível no dataset
func GetStores(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeRange, err := service.GetStoreRange(r.Context())
		if err != nil {
			handleForecastError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, storeRange)
	}
}

func GetPrediction(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := parsePredictionRequest(w, r)
		if !ok {
			return
		}

		resp, err := service.Predict(r.Context(), req)
		if err != nil {
			handleForecastError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// GetSensitivity aceita ?dimension repetido ou separado por vírgulas; sem ele todas as curvas são geradas
func GetSensitivity(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := parsePredictionRequest(w, r)
		if !ok {
			return
		}

		dimensions, err := parseDimensions(r.URL.Query())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		resp, err := service.Sensitivity(r.Context(), forecasting.SensitivityRequest{
			PredictionRequest: req,
			Dimensions:        dimensions,
		})
		if err != nil {
			handleForecastError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func GetTrend(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := parsePredictionRequest(w, r)
		if !ok {
			return
		}

		resp, err := service.RecentTrend(r.Context(), req)
		if err != nil {
			handleForecastError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// parsePredictionRequest escreve o erro de validação e retorna false quando a requisição é inválida
func parsePredictionRequest(w http.ResponseWriter, r *http.Request) (forecasting.PredictionRequest, bool) {
	storeID, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("id"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da loja deve ser um número inteiro", nil)
		return forecasting.PredictionRequest{}, false
	}

	query := r.URL.Query()

	inputs, err := parseInputs(query)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return forecasting.PredictionRequest{}, false
	}

	req := forecasting.PredictionRequest{
		StoreID: storeID,
		Inputs:  inputs,
	}

	if model := query.Get("model"); model != "" {
		variant, err := domain.ParseModelVariant(model)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return forecasting.PredictionRequest{}, false
		}
		req.Model = variant
	}

	return req, true
}

// parseInputs parte dos valores de referência e sobrescreve os parâmetros informados
func parseInputs(query url.Values) (domain.ModelInputs, error) {
	inputs := domain.ReferenceInputs()

	if raw := query.Get("holiday"); raw != "" {
		isHoliday, err := strconv.ParseBool(raw)
		if err != nil {
			return domain.ModelInputs{}, errors.New("holiday deve ser true ou false")
		}
		inputs.IsHoliday = isHoliday
	}

	for _, d := range domain.Dimensions() {
		raw := query.Get(string(d))
		if raw == "" {
			continue
		}

		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.ModelInputs{}, errors.New(string(d) + " deve ser numérico")
		}

		inputs, _ = inputs.With(d, value)
	}

	return inputs, nil
}

func parseDimensions(query url.Values) ([]domain.Dimension, error) {
	dimensions := make([]domain.Dimension, 0)
	seen := make(map[domain.Dimension]struct{})

	for _, raw := range query["dimension"] {
		for _, part := range strings.Split(raw, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}

			d, err := domain.ParseDimension(part)
			if err != nil {
				return nil, err
			}

			if _, dup := seen[d]; dup {
				continue
			}
			seen[d] = struct{}{}
			dimensions = append(dimensions, d)
		}
	}

	return dimensions, nil
}

func handleForecastError(w http.ResponseWriter, err error) {
	var forecastErr *forecasting.ForecastError
	if errors.As(err, &forecastErr) {
		var details any
		if forecastErr.StoreID != 0 {
			details = map[string]int{"store_id": forecastErr.StoreID}
		}

		logrus.WithFields(logrus.Fields{
			"code":     forecastErr.Code,
			"store_id": forecastErr.StoreID,
		}).WithError(err).Warn("Previsão recusada")

		apiErr := apiErrors.FromError(forecastErr, forecastErr.Code)
		apiErrors.WriteError(w, apiErr.Code, apiErr.Message, details)
		return
	}

	writeInternalError(w, err)
}
