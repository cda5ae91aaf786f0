package domain

// ScoreRecord is the final output row for one wallet. Score is an integer
// in [0, 1000]; higher means riskier relative to the rest of the batch.
type ScoreRecord struct {
	WalletID string `json:"wallet_id" csv:"wallet_id"`
	Score    int    `json:"score" csv:"score"`
}
