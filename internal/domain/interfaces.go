package domain

import "context"

// EmployeeStore is the append-only employees table. Append assigns and
// returns the new identifier; Scan returns every row in insertion
// order, freshly read from durable state.
type EmployeeStore interface {
	Append(ctx context.Context, e *Employee) (int, error)
	Scan(ctx context.Context) ([]Employee, error)
	Exists(ctx context.Context, id int) (bool, error)
}

// PerformanceStore is the append-only performance table. Append
// enforces referential integrity against the employees table.
type PerformanceStore interface {
	Append(ctx context.Context, p *Performance) error
	Scan(ctx context.Context) ([]Performance, error)
}

// UserStore is the append-only users table backing registration and
// login.
type UserStore interface {
	Append(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
}

// Classifier turns one feature vector into an attrition prediction.
type Classifier interface {
	Predict(ctx context.Context, f *FeatureVector) (*Prediction, error)
}
