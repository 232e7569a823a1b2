package models

type Customer struct {
	ID    int64  `json:"id"`
	Fname string `json:"fname"`
	Lname string `json:"lname"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Admin struct {
	ID     int64  `json:"id"`
	Fname  string `json:"fname"`
	Lname  string `json:"lname"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Gender string `json:"gender"`
}

// Project is a row of the cprojects table.
type Project struct {
	ID           int64  `json:"id"`
	Cprojectname string `json:"cprojectname"`
	Plocation    string `json:"plocation"`
}
