package repositories

// DbRepository groups the postgres data access functions of every aggregate.
type DbRepository struct{}
