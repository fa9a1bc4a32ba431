package syncer

import (
	"context"

	"pdvstar/mirror"
	"pdvstar/models"
)

// UserDirectory is the dual-backend user repository of the design notes: the
// same contract implemented against the remote gateway and against the local
// mirror, composed by a thin fallback decorator so orchestrators and the
// session manager never duplicate fallback logic.
type UserDirectory interface {
	FindByPhone(ctx context.Context, phone string) (*models.User, error)
	Create(ctx context.Context, u models.User) (models.User, error)
	Update(ctx context.Context, id string, patch models.UserPatch) (models.User, error)
}

type remoteUsers struct{ gw UserGateway }

func RemoteUsers(gw UserGateway) UserDirectory { return remoteUsers{gw: gw} }

func (r remoteUsers) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	return r.gw.FindUserByPhone(ctx, phone)
}

func (r remoteUsers) Create(ctx context.Context, u models.User) (models.User, error) {
	return r.gw.CreateUser(ctx, u)
}

func (r remoteUsers) Update(ctx context.Context, id string, patch models.UserPatch) (models.User, error) {
	return r.gw.UpdateUser(ctx, id, patch)
}

type mirrorUsers struct{ m *mirror.Store }

func MirrorUsers(m *mirror.Store) UserDirectory { return mirrorUsers{m: m} }

func (r mirrorUsers) FindByPhone(_ context.Context, phone string) (*models.User, error) {
	return r.m.FindUserByPhone(phone), nil
}

func (r mirrorUsers) Create(_ context.Context, u models.User) (models.User, error) {
	return r.m.CreateUser(u), nil
}

func (r mirrorUsers) Update(_ context.Context, id string, patch models.UserPatch) (models.User, error) {
	if u := r.m.UpdateUser(id, patch); u != nil {
		return *u, nil
	}
	return models.User{}, nil
}

// fallbackUsers tries the primary and switches to the secondary only on
// failure. A clean "not found" from the primary is authoritative and does
// not trigger the fallback.
type fallbackUsers struct {
	primary   UserDirectory
	secondary UserDirectory
}

func FallbackUsers(primary, secondary UserDirectory) UserDirectory {
	return fallbackUsers{primary: primary, secondary: secondary}
}

func (f fallbackUsers) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	u, err := f.primary.FindByPhone(ctx, phone)
	if err != nil {
		return f.secondary.FindByPhone(ctx, phone)
	}
	return u, nil
}

func (f fallbackUsers) Create(ctx context.Context, u models.User) (models.User, error) {
	created, err := f.primary.Create(ctx, u)
	if err != nil {
		return f.secondary.Create(ctx, u)
	}
	return created, nil
}

func (f fallbackUsers) Update(ctx context.Context, id string, patch models.UserPatch) (models.User, error) {
	updated, err := f.primary.Update(ctx, id, patch)
	if err != nil {
		return f.secondary.Update(ctx, id, patch)
	}
	return updated, nil
}
