package domain

// ==================== TABLE ROWS ====================

// Employee represents one row of the employees table.
// Rows are append-only: an employee is never mutated or deleted and its
// ID is permanent.
type Employee struct {
	ID          int    `json:"employee_id"`
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Department  string `json:"department"`
	Role        string `json:"role"`
	Salary      int    `json:"salary"`
	JoiningYear int    `json:"joining_year"`
	Gender      string `json:"gender"`
}

// Performance represents one row of the performance table. An employee
// may accumulate any number of performance rows over time.
type Performance struct {
	EmployeeID        int     `json:"employee_id"`
	Rating            int     `json:"rating"`
	ProjectsCompleted int     `json:"projects_completed"`
	AvgDailyHours     float64 `json:"avg_daily_hours"`
	Attrition         int     `json:"attrition"`
	Reason            string  `json:"reason"`
}

// User represents one row of the users table.
type User struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// ==================== DERIVED VIEWS ====================

// JoinedRow is one row of the ephemeral employee-performance view: the
// employee's static attributes alongside one performance snapshot.
// Never persisted.
type JoinedRow struct {
	Employee
	Performance
}

// SalaryRatingPoint is a single (salary, rating) pair for scatter-style
// presentation.
type SalaryRatingPoint struct {
	Salary int `json:"Salary"`
	Rating int `json:"Rating"`
}

// CategoryCount is one bucket of a categorical distribution. Buckets
// are ordered by descending count, ties broken by first-encountered
// order.
type CategoryCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// BucketCount is one bucket of a numeric distribution (rating or
// joining year), ordered ascending by bucket value.
type BucketCount struct {
	Bucket int `json:"bucket"`
	Count  int `json:"count"`
}

// CategoryMean is the mean of a numeric field restricted to one
// category.
type CategoryMean struct {
	Value string  `json:"value"`
	Mean  float64 `json:"mean"`
}

// ==================== REPORTS ====================

// AnalyticsReport is the global report computed over the full joined
// view.
type AnalyticsReport struct {
	TotalEmployees    int                 `json:"total_employees"`
	AvgRating         float64             `json:"avg_rating"`
	AttritionRate     float64             `json:"attrition_rate"`
	DeptCounts        []CategoryCount     `json:"dept_counts"`
	AttritionByDept   []CategoryCount     `json:"attrition_by_dept"`
	RoleCounts        []CategoryCount     `json:"role_counts"`
	SalaryRatingData  []SalaryRatingPoint `json:"salary_rating_data"`
	SalaryByDept      []CategoryMean      `json:"salary_by_dept"`
	RatingCounts      []BucketCount       `json:"rating_counts"`
	JoiningYearCounts []BucketCount       `json:"joining_year_counts"`
	AttritionReasons  []CategoryCount     `json:"attrition_reasons"`
	Departments       []string            `json:"departments"`
}

// DepartmentReport is the same catalogue computed over the view
// filtered to a single department.
type DepartmentReport struct {
	Department         string              `json:"department"`
	TotalEmployees     int                 `json:"total_employees"`
	AvgRating          float64             `json:"avg_rating"`
	AttritionRate      float64             `json:"attrition_rate"`
	AvgSalary          float64             `json:"avg_salary"`
	RoleCounts         []CategoryCount     `json:"role_counts"`
	RatingCounts       []BucketCount       `json:"rating_counts"`
	JoiningYearCounts  []BucketCount       `json:"joining_year_counts"`
	SalaryRatingData   []SalaryRatingPoint `json:"salary_rating_data"`
	GenderDistribution []CategoryCount     `json:"gender_distribution"`
	AttritionCount     int                 `json:"attrition_count"`
	AttritionReasons   []CategoryCount     `json:"attrition_reasons"`
	AvgProjects        float64             `json:"avg_projects"`
	AvgDailyHours      float64             `json:"avg_daily_hours"`
}

// ==================== INFERENCE ====================

// FeatureVector is the fixed-shape record the attrition classifier was
// trained on. Field names, types and categorical domains are part of
// the model contract.
type FeatureVector struct {
	Age               int     `json:"Age"`
	Department        string  `json:"Department"`
	Role              string  `json:"Role"`
	Salary            int     `json:"Salary"`
	JoiningYear       int     `json:"JoiningYear"`
	Gender            string  `json:"Gender"`
	Rating            int     `json:"Rating"`
	ProjectsCompleted int     `json:"ProjectsCompleted"`
	AvgDailyHours     float64 `json:"AvgDailyHours"`
}

// Prediction is the classifier's answer for one feature vector.
type Prediction struct {
	Label       string  `json:"prediction"`
	Probability float64 `json:"probability"`
	RiskLevel   string  `json:"risk_level"`
}
