package converter

import (
	"hotel-reservation/internal/domain/guest"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/domain/roomtype"
	"hotel-reservation/internal/domain/user"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/pgconv"
)

func RoomTypeToInfra(rt *roomtype.RoomType) sqlc.CreateRoomTypeParams {
	rates := rt.Rates()
	return sqlc.CreateRoomTypeParams{
		ID:                rt.ID(),
		Name:              rt.Name(),
		WeekdayPriceMinor: rates.Weekday.Minor(),
		WeekendPriceMinor: rates.Weekend.Minor(),
		Capacity:          int32(rt.Capacity()), // #nosec G115 -- capacity is validated small
		Amenities:         rt.Amenities(),
		ImageUrl:          pgconv.OptionalText(rt.ImageURL()),
	}
}

func RoomTypeFromInfra(row sqlc.RoomTypes) (*roomtype.RoomType, error) {
	rates, err := roomtype.NewRates(row.WeekdayPriceMinor, row.WeekendPriceMinor)
	if err != nil {
		return nil, err
	}
	amenities := row.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return roomtype.Reconstruct(
		row.ID,
		row.Name,
		rates,
		int(row.Capacity),
		amenities,
		pgconv.StringFromPgtype(row.ImageUrl),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func RoomToInfra(r *room.Room) sqlc.CreateRoomParams {
	return sqlc.CreateRoomParams{
		ID:         r.ID(),
		RoomNumber: r.Number(),
		RoomTypeID: r.RoomTypeID(),
		Floor:      int32(r.Floor()), // #nosec G115 -- floor numbers are small
		Status:     r.Status().String(),
	}
}

func RoomFromInfra(row sqlc.Rooms) (*room.Room, error) {
	status, err := room.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return room.Reconstruct(row.ID, row.RoomNumber, row.RoomTypeID, int(row.Floor), status), nil
}

func GuestToInfra(g *guest.Guest) sqlc.CreateGuestParams {
	return sqlc.CreateGuestParams{
		ID:        g.ID(),
		UserID:    pgconv.UUIDPtrToPgtype(g.UserID()),
		FirstName: g.FirstName(),
		LastName:  g.LastName(),
		Email:     g.Email().Value(),
		Phone:     pgconv.OptionalText(g.Phone()),
	}
}

func GuestFromInfra(row sqlc.Guests) (*guest.Guest, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	name := row.FirstName
	if row.LastName != "" {
		name += " " + row.LastName
	}
	return guest.Reconstruct(
		row.ID,
		pgconv.UUIDPtrFromPgtype(row.UserID),
		name,
		email,
		pgconv.StringFromPgtype(row.Phone),
	), nil
}
