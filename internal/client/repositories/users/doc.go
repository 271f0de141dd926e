// Package users persists user records in the local store.
//
// All records live in one JSON object under the users key, indexed by user
// identifier. A malformed object reads as empty; Create and Delete refuse
// to overwrite it and report common.ErrCorruptStore.
//
// Typical Usage
//
//	repo := users.NewKVRepository(store, "nvx_users", log)
//	_ = repo.Create(ctx, &models.User{ID: id, Email: "a@b.c"})
//	u, _ := repo.Get(ctx, id)
//	_ = repo.WithStore(tx).Delete(ctx, id)
package users
