package dto

// DocumentSummaryResponse elemento de una colección LOV.
type DocumentSummaryResponse struct {
	ID               int64  `json:"id"`
	Number           string `json:"number"`
	CounterpartyName string `json:"counterparty_name"`
}
