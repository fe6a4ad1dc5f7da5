package entity

type Station struct {
	ID   string `json:"station"`
	Name string `json:"name"`
}
