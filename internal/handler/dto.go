package handler

// Request shapes mirror the public API field names exactly; they are
// part of the wire contract and are mapped onto domain rows at the
// handler boundary.

type NewEmployeeRequest struct {
	Name        string `json:"Name"`
	Age         int    `json:"Age"`
	Department  string `json:"Department"`
	Role        string `json:"Role"`
	Salary      int    `json:"Salary"`
	JoiningYear int    `json:"JoiningYear"`
	Gender      string `json:"Gender"`
}

type NewPerformanceRequest struct {
	EmployeeID        int     `json:"EmployeeID"`
	Rating            int     `json:"Rating"`
	ProjectsCompleted int     `json:"ProjectsCompleted"`
	AvgDailyHours     float64 `json:"AvgDailyHours"`
	Attrition         int     `json:"Attrition"`
	Reason            string  `json:"Reason"`
}

type RegisterRequest struct {
	Name     string `json:"Name"`
	Email    string `json:"Email"`
	Password string `json:"Password"`
}

type LoginRequest struct {
	Email    string `json:"Email"`
	Password string `json:"Password"`
}

type AddEmployeeResponse struct {
	EmployeeID int `json:"employee_id"`
}
