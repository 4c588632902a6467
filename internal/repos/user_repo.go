package repos

import (
	"context"

	"shopapi/internal/domain"
)

type UserRepo struct {
	table[domain.User, int64]
}

func NewUserRepo(db Querier) *UserRepo {
	return &UserRepo{table: idTable[domain.User](db, "tb_user", "id, name, email, phone, password_hash")}
}

// Save inserts when u.ID is zero (the store assigns the id) and upserts otherwise.
func (r *UserRepo) Save(ctx context.Context, u *domain.User) error {
	if u.ID == 0 {
		err := r.db.GetContext(ctx, &u.ID, r.db.Rebind(`
			INSERT INTO tb_user(name, email, phone, password_hash)
			VALUES(?, ?, ?, ?)
			RETURNING id`), u.Name, u.Email, u.Phone, u.PasswordHash)
		return wrap(err, "insert", r.name)
	}
	_, err := r.db.ExecContext(ctx, r.db.Rebind(`
		INSERT INTO tb_user(id, name, email, phone, password_hash)
		VALUES(?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
		  name = excluded.name, email = excluded.email,
		  phone = excluded.phone, password_hash = excluded.password_hash`),
		u.ID, u.Name, u.Email, u.Phone, u.PasswordHash)
	return wrap(err, "upsert", r.name)
}
