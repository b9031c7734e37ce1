package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/CreativeMB/Server/internal/directory"
	"github.com/CreativeMB/Server/internal/docs"
	"github.com/CreativeMB/Server/internal/logger"
	"github.com/CreativeMB/Server/internal/presence"
)

const (
	// ProfileCollection holds one profile document per user, keyed by uid.
	ProfileCollection = "users"

	// OrdersCollection holds order documents referencing users through
	// the OrdersUserField foreign key.
	OrdersCollection = "pedidosmovies"
	OrdersUserField  = "userId"
)

const internalMessage = "Ocurrió un error inesperado en el servidor al intentar eliminar el usuario."

// Deleter removes a user from the authentication directory, the
// realtime presence store and the document store. The three stores
// share no transaction, so the cascade is ordered to fail safe: the
// directory goes first, and nothing downstream is touched unless that
// deletion committed.
type Deleter struct {
	directory directory.Store
	presence  presence.Store
	docs      docs.Store
	resolver  *Resolver
}

func NewDeleter(dir directory.Store, pres presence.Store, d docs.Store, resolver *Resolver) *Deleter {
	return &Deleter{
		directory: dir,
		presence:  pres,
		docs:      d,
		resolver:  resolver,
	}
}

// Run executes the full cascade for one target and always returns a
// structured outcome; no error escapes this boundary.
func (d *Deleter) Run(ctx context.Context, target Target) Outcome {

	uid := strings.TrimSpace(target.UID)
	email := strings.TrimSpace(target.Email)

	if uid == "" && email == "" {
		return failed(KindInvalidInput, "Se requiere un uid o un email para eliminar un usuario.")
	}

	// Resolve the alternate entry point to the canonical key before
	// anything is deleted.
	nodeKey := ""
	if uid == "" {
		var err error
		uid, nodeKey, err = d.resolver.ResolveEmail(ctx, email)
		if errors.Is(err, ErrNoMatch) {
			return failed(KindNotFound, fmt.Sprintf("No existe ningún usuario registrado con el correo %s.", email))
		}
		if err != nil {
			logger.Error("email resolution failed", map[string]any{
				"email": email,
				"error": err.Error(),
			})
			return failed(KindInternal, internalMessage)
		}
	}

	// The directory is the irrevocable step. If the entry is already
	// gone there is nothing to cascade from; any other failure must halt
	// the run before a single downstream record is touched.
	if err := d.directory.DeleteUser(ctx, uid); err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return failed(KindNotFound, fmt.Sprintf("El usuario %s no existe en el directorio de autenticación.", uid))
		}
		logger.Error("directory deletion failed", map[string]any{
			"uid":   uid,
			"error": err.Error(),
		})
		return failed(KindInternal, internalMessage)
	}

	logger.Info("directory entry deleted", map[string]any{"uid": uid})

	if out, ok := d.removePresence(ctx, uid, nodeKey); !ok {
		return out
	}

	// Profile document; absence just means the user never completed one.
	if err := d.docs.DeleteDoc(ctx, ProfileCollection, uid); err != nil {
		logger.Error("profile document deletion failed", map[string]any{
			"uid":   uid,
			"error": err.Error(),
		})
		return failed(KindInternal, internalMessage)
	}

	if out, ok := d.removeOrders(ctx, uid); !ok {
		return out
	}

	return succeeded(fmt.Sprintf("El usuario %s y todos sus datos han sido eliminados completamente.", uid))
}

// removePresence drops the connected-user node, if one exists. A user
// with no realtime presence is the common case, not a failure.
func (d *Deleter) removePresence(ctx context.Context, uid, nodeKey string) (Outcome, bool) {

	if nodeKey == "" {
		key, err := d.resolver.NodeKey(ctx, uid)
		switch {
		case errors.Is(err, ErrNoMatch):
			return Outcome{}, true // never connected
		case err != nil:
			logger.Error("presence lookup failed", map[string]any{
				"uid":   uid,
				"error": err.Error(),
			})
			return failed(KindInternal, internalMessage), false
		}
		nodeKey = key
	}

	if err := d.presence.Remove(ctx, presence.Path(ConnectedCollection, nodeKey)); err != nil {
		logger.Error("presence removal failed", map[string]any{
			"uid":   uid,
			"node":  nodeKey,
			"error": err.Error(),
		})
		return failed(KindInternal, internalMessage), false
	}

	return Outcome{}, true
}

// removeOrders queries the orders referencing uid and deletes the whole
// set as one batch. By the time this runs the directory entry is gone:
// a batch failure leaves the orders orphaned until cleaned up by hand,
// which the caller learns about through the error outcome.
func (d *Deleter) removeOrders(ctx context.Context, uid string) (Outcome, bool) {

	orders, err := d.docs.Query(ctx, OrdersCollection, OrdersUserField, uid)
	if err != nil {
		logger.Error("order query failed", map[string]any{
			"uid":   uid,
			"error": err.Error(),
		})
		return failed(KindInternal, internalMessage), false
	}

	if len(orders) == 0 {
		logger.Info("no orders to delete", map[string]any{"uid": uid})
		return Outcome{}, true
	}

	refs := make([]docs.Ref, 0, len(orders))
	for _, o := range orders {
		refs = append(refs, docs.Ref{Collection: OrdersCollection, ID: o.ID})
	}

	if err := d.docs.BatchDelete(ctx, refs); err != nil {
		logger.Error("order batch deletion failed after directory deletion", map[string]any{
			"uid":    uid,
			"orders": len(refs),
			"error":  err.Error(),
		})
		return failed(KindInternal, internalMessage), false
	}

	logger.Info("orders deleted", map[string]any{"uid": uid, "count": len(refs)})

	return Outcome{}, true
}
