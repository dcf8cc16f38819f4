package dto

// PrehireRequest candidato a evaluar. CandidateID/CandidateName son
// metadatos; el resto son features del modelo de attrition.
type PrehireRequest struct {
	CandidateID   string `json:"CandidateID"`
	CandidateName string `json:"CandidateName"`

	Age                   int    `json:"Age"`
	Gender                string `json:"Gender"`
	BusinessTravel        string `json:"BusinessTravel"`
	Department            string `json:"Department"`
	Education             int    `json:"Education"`
	EducationField        string `json:"EducationField"`
	JobRole               string `json:"JobRole"`
	MaritalStatus         string `json:"MaritalStatus"`
	DistanceFromHome      int    `json:"DistanceFromHome"`
	TotalWorkingYears     int    `json:"TotalWorkingYears"`
	NumCompaniesWorked    int    `json:"NumCompaniesWorked"`
	StockOptionLevel      int    `json:"StockOptionLevel"`
	TrainingTimesLastYear int    `json:"TrainingTimesLastYear"`
}

// PrehireResponse resultado de la predicción pre-hire.
type PrehireResponse struct {
	ID            string  `json:"id"`
	Probability   float64 `json:"probability"`
	RiskFlag      string  `json:"risk_flag"`
	Threshold     float64 `json:"threshold"`
	ModelVersion  string  `json:"model_version"`
	Saved         bool    `json:"saved"`
	CandidateID   string  `json:"candidate_id"`
	CandidateName string  `json:"candidate_name"`
}

// RankedEmployee fila de los rankings de turnover y performance.
// Flag se llama risk_flag en turnover y label en performance; el usecase
// llena uno de los dos.
type RankedEmployee struct {
	EmpID       string  `json:"emp_id"`
	FullName    string  `json:"full_name"`
	Department  string  `json:"department"`
	JobRole     string  `json:"job_role"`
	Probability float64 `json:"probability"`
	RiskFlag    string  `json:"risk_flag,omitempty"`
	Label       string  `json:"label,omitempty"`
}

// RankResponse respuesta de los endpoints de ranking.
type RankResponse struct {
	Count        int              `json:"count"`
	ModelVersion string           `json:"model_version"`
	Results      []RankedEmployee `json:"results"`
}
