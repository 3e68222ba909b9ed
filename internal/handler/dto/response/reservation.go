package response

import "stayhub/internal/usecase/queries"

type ReservationListResponse struct {
	Items []*queries.ReservationListItem `json:"items"`
	Total int64                          `json:"total"`
	Page  int                            `json:"page"`
	Limit int                            `json:"limit"`
}
