package database

// Repository implements Gateway over a DBTX.
// It composes the per-table repositories using struct embedding.
type Repository struct {
	*BoardRepo
	*ColumnRepo
	*CardRepo
	*BlockRepo
}

var _ Gateway = (*Repository)(nil)

// NewRepository creates a Repository bound to db, which is usually the
// *sql.Tx of a transaction scope.
func NewRepository(db DBTX) *Repository {
	return &Repository{
		BoardRepo:  &BoardRepo{db: db},
		ColumnRepo: &ColumnRepo{db: db},
		CardRepo:   &CardRepo{db: db},
		BlockRepo:  &BlockRepo{db: db},
	}
}
