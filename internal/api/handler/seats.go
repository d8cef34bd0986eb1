package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-pulse-api/internal/domain"
	"github.com/vfg2006/sales-pulse-api/internal/usecases/seating"
	"github.com/vfg2006/sales-pulse-api/pkg/apiErrors"
	"github.com/vfg2006/sales-pulse-api/pkg/log"
)

func ListSeats(service seating.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		seats, err := service.ListSeats()
		if err != nil {
			logger.WithError(err).Error("seats: erro ao listar assentos")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar assentos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(seats); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreateSeat(service seating.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		w.Header().Set("Content-Type", "application/json")

		var seat domain.Seat
		if err := json.NewDecoder(r.Body).Decode(&seat); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		created, err := service.CreateSeat(&seat)
		if err != nil {
			logger.WithFields(log.Fields{
				"email": seat.Email,
				"error": err.Error(),
			}).Error("seats: erro ao criar assento")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"seat_id": created.ID,
			"email":   created.Email,
		}).Info("seats: assento criado")

		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetSeat(service seating.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do assento é obrigatório", nil)
			return
		}

		seat, err := service.GetSeatByID(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"seat_id": id,
				"error":   err.Error(),
			}).Error("seats: erro ao buscar assento")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar assento", nil)
			return
		}

		if seat == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Assento não encontrado", map[string]any{
				"seat_id": id,
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(seat); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdateSeat(service seating.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do assento é obrigatório", nil)
			return
		}

		var seat domain.Seat
		if err := json.NewDecoder(r.Body).Decode(&seat); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL seja usado
		seat.ID = id

		if err := service.UpdateSeat(&seat); err != nil {
			logger.WithFields(log.Fields{
				"seat_id": id,
				"error":   err.Error(),
			}).Error("seats: erro ao atualizar assento")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar assento", nil)
			return
		}

		if err := json.NewEncoder(w).Encode(seat); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func AutoMapSeats(service seating.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		w.Header().Set("Content-Type", "application/json")

		result, err := service.AutoMapOwners()
		if err != nil {
			logger.WithError(err).Error("seats: erro no mapeamento automático de responsáveis")

			writeIntegrationError(w, err, "Erro ao mapear assentos com responsáveis do CRM")
			return
		}

		logger.WithFields(log.Fields{
			"mapped":    result.Mapped,
			"unmatched": result.Unmatched,
		}).Info("seats: mapeamento automático concluído")

		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
