package entity

type Category struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
}

type PaymentPlan struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Price       int64  `json:"price" yaml:"price"`
	Description string `json:"description" yaml:"description"`
}

// PromoCode rewards a wholesale order request when the shopkeeper quotes the code.
type PromoCode struct {
	Code   string `json:"code" yaml:"code"`
	Reward string `json:"reward" yaml:"reward"`
}
