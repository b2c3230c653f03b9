package expense

import (
	"encoding/json"
	"net/http"

	"github.com/Minpi-0/traveler-app/internal/rest"
	"github.com/Minpi-0/traveler-app/pkg/currency"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type ExpenseDTO struct {
	ID            string `json:"id,omitempty"`
	Date          string `json:"date"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	HomeAmount    string `json:"homeAmount,omitempty"`
	HomeCurrency  string `json:"homeCurrency,omitempty"`
	InputAmount   string `json:"inputAmount"`
	InputCurrency string `json:"inputCurrency"`
	Payer         string `json:"payer"`
}

type FilterResultDTO struct {
	Expenses []ExpenseDTO `json:"expenses"`
	Total    string       `json:"total"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new expense")
	w.Header().Set("Content-Type", "application/json")

	var dto ExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	e, ok := dtoToExpense(dto)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid expense",
			Details: "date, payer and a numeric inputAmount in a supported currency are required",
		})
		return
	}

	created, err := h.service.Create(r.Context(), e)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(expenseToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) GetFiltered(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	query := r.URL.Query()
	payerFilter := query.Get("payer")
	dateStart := query.Get("from")
	dateEnd := query.Get("to")

	expenses, total, err := h.service.Filter(r.Context(), payerFilter, dateStart, dateEnd)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]ExpenseDTO, 0, len(expenses))
	for _, e := range expenses {
		dtos = append(dtos, expenseToDTO(e))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(FilterResultDTO{Expenses: dtos, Total: total.StringFixed(2)}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	id := vars["id"]

	var dto ExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.ID == "" || dto.ID != id {
		http.Error(w, "Invalid expense id in request body", http.StatusBadRequest)
		return
	}
	e, ok := dtoToExpense(dto)
	if !ok {
		http.Error(w, "Invalid expense", http.StatusBadRequest)
		return
	}
	e.ID = id

	stored, updated, err := h.service.Update(r.Context(), e)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !updated {
		http.Error(w, "Expense not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(expenseToDTO(stored)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	id := vars["id"]

	deleted, err := h.service.Delete(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "Expense not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func expenseToDTO(e Expense) ExpenseDTO {
	return ExpenseDTO{
		ID:            e.ID,
		Date:          e.Date,
		Category:      string(e.Category),
		Description:   e.Description,
		HomeAmount:    e.HomeAmount.StringFixed(2),
		HomeCurrency:  string(e.HomeCurrency),
		InputAmount:   e.InputAmount.String(),
		InputCurrency: string(e.InputCurrency),
		Payer:         e.Payer,
	}
}

func dtoToExpense(dto ExpenseDTO) (Expense, bool) {
	amount, ok := currency.ParseAmount(dto.InputAmount)
	if !ok {
		return Expense{}, false
	}
	inputCurrency := currency.Currency(dto.InputCurrency)
	if dto.Date == "" || dto.Payer == "" || !currency.IsValid(inputCurrency) {
		return Expense{}, false
	}
	return Expense{
		ID:            dto.ID,
		Date:          dto.Date,
		Category:      Category(dto.Category),
		Description:   dto.Description,
		InputAmount:   amount,
		InputCurrency: inputCurrency,
		Payer:         dto.Payer,
	}, true
}
