package ports

import "context"

// RoomTypeLocker hands out a mutual-exclusion token per room type. The
// returned release func is safe to call more than once.
type RoomTypeLocker interface {
	Lock(ctx context.Context, roomTypeID string) (func(), error)
}
