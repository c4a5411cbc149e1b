package directory

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Service owns the doctor and room registries. Doctors and rooms are
// read-only from the scheduler's perspective; only this service mutates
// them.
type Service struct {
	doctors DoctorRepository
	rooms   RoomRepository
}

func NewService(doctors DoctorRepository, rooms RoomRepository) *Service {
	return &Service{doctors: doctors, rooms: rooms}
}

// -- Doctors --

func (s *Service) CreateDoctor(ctx context.Context, d *Doctor) error {
	if d.Name == "" {
		return errors.New("name is required")
	}
	return s.doctors.Create(ctx, d)
}

func (s *Service) GetDoctor(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}

func (s *Service) UpdateDoctor(ctx context.Context, d *Doctor) error {
	return s.doctors.Update(ctx, d)
}

func (s *Service) DeleteDoctor(ctx context.Context, id uuid.UUID) error {
	return s.doctors.Delete(ctx, id)
}

func (s *Service) ListDoctors(ctx context.Context, limit, offset int) ([]*Doctor, int, error) {
	return s.doctors.List(ctx, limit, offset)
}

// DoctorExists reports whether the doctor id resolves. It satisfies the
// scheduler's doctor lookup contract.
func (s *Service) DoctorExists(ctx context.Context, id uuid.UUID) (bool, error) {
	_, err := s.doctors.GetByID(ctx, id)
	if errors.Is(err, ErrDoctorNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// -- Rooms --

func (s *Service) CreateRoom(ctx context.Context, r *Room) error {
	if r.Number <= 0 {
		return errors.New("room_number is required")
	}
	return s.rooms.Create(ctx, r)
}

func (s *Service) GetRoom(ctx context.Context, id uuid.UUID) (*Room, error) {
	return s.rooms.GetByID(ctx, id)
}

func (s *Service) UpdateRoom(ctx context.Context, r *Room) error {
	return s.rooms.Update(ctx, r)
}

func (s *Service) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	return s.rooms.Delete(ctx, id)
}

func (s *Service) ListRooms(ctx context.Context, limit, offset int) ([]*Room, int, error) {
	return s.rooms.List(ctx, limit, offset)
}

// RoomExists reports whether the room id resolves. It satisfies the
// scheduler's room lookup contract.
func (s *Service) RoomExists(ctx context.Context, id uuid.UUID) (bool, error) {
	_, err := s.rooms.GetByID(ctx, id)
	if errors.Is(err, ErrRoomNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
