package get_procedures

import "github.com/m04kA/OdontoBooking/internal/domain"

// ProcedureResponse HTTP модель процедуры
type ProcedureResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	Professional string `json:"professional"`
}

// FromDomainProcedures конвертирует каталог в HTTP модели
func FromDomainProcedures(list []domain.Procedure) []ProcedureResponse {
	resp := make([]ProcedureResponse, 0, len(list))
	for _, p := range list {
		resp = append(resp, ProcedureResponse{
			ID:           p.ID,
			Name:         p.Name,
			Description:  p.Description,
			Icon:         p.Icon,
			Professional: p.Professional,
		})
	}
	return resp
}
