package services

import (
	"context"
	"sort"

	"github.com/anjellyyy/smart-hostel-management-system/internal/app/models"
	"github.com/anjellyyy/smart-hostel-management-system/internal/app/repositories"
)

// In-memory store fakes. They mirror the repository contracts closely
// enough for service behavior: the shared not-found sentinel, duplicate
// detection and result ordering.

type fakeStudentStore struct {
	students []*models.Student
}

func (f *fakeStudentStore) GetAll(_ context.Context) ([]*models.Student, error) {
	result := append([]*models.Student(nil), f.students...)
	sort.Slice(result, func(i, j int) bool { return result[i].StudentID < result[j].StudentID })
	return result, nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, studentID string) (*models.Student, error) {
	for _, s := range f.students {
		if s.StudentID == studentID {
			return s, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeStudentStore) GetFirstByRoomNo(_ context.Context, roomNo string) (*models.Student, error) {
	var match *models.Student
	for _, s := range f.students {
		if s.RoomNo != nil && *s.RoomNo == roomNo {
			if match == nil || s.StudentID < match.StudentID {
				match = s
			}
		}
	}
	if match == nil {
		return nil, repositories.ErrNotFound
	}
	return match, nil
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	for _, s := range f.students {
		if s.StudentID == student.StudentID {
			return repositories.ErrStudentAlreadyExists
		}
	}
	f.students = append(f.students, student)
	return nil
}

func (f *fakeStudentStore) UpdateRoom(_ context.Context, studentID string, roomNo *string) error {
	for _, s := range f.students {
		if s.StudentID == studentID {
			s.RoomNo = roomNo
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeStudentStore) Delete(_ context.Context, studentID string) error {
	for i, s := range f.students {
		if s.StudentID == studentID {
			f.students = append(f.students[:i], f.students[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeStudentStore) CountAll(_ context.Context) (int, error) {
	return len(f.students), nil
}

func (f *fakeStudentStore) GetRecent(_ context.Context, limit uint64) ([]*models.Student, error) {
	result := append([]*models.Student(nil), f.students...)
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	if uint64(len(result)) > limit {
		result = result[:limit]
	}
	return result, nil
}

type fakeRoomStore struct {
	rooms []*models.Room
}

func (f *fakeRoomStore) GetAll(_ context.Context) ([]*models.Room, error) {
	result := append([]*models.Room(nil), f.rooms...)
	sort.Slice(result, func(i, j int) bool { return result[i].RoomNo < result[j].RoomNo })
	return result, nil
}

func (f *fakeRoomStore) GetByRoomNo(_ context.Context, roomNo string) (*models.Room, error) {
	for _, r := range f.rooms {
		if r.RoomNo == roomNo {
			return r, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeRoomStore) CountAll(_ context.Context) (int, error) {
	return len(f.rooms), nil
}

type fakePaymentStore struct {
	payments []*models.Payment
	nextID   int64
}

func (f *fakePaymentStore) GetAll(_ context.Context) ([]*models.Payment, error) {
	result := append([]*models.Payment(nil), f.payments...)
	sort.Slice(result, func(i, j int) bool { return result[i].PaymentDate.After(result[j].PaymentDate) })
	return result, nil
}

func (f *fakePaymentStore) Create(_ context.Context, payment *models.Payment) (int64, error) {
	f.nextID++
	payment.PaymentID = f.nextID
	f.payments = append(f.payments, payment)
	return f.nextID, nil
}

func (f *fakePaymentStore) GetRecent(_ context.Context, limit uint64) ([]*models.Payment, error) {
	result := append([]*models.Payment(nil), f.payments...)
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	if uint64(len(result)) > limit {
		result = result[:limit]
	}
	return result, nil
}

type fakeComplaintStore struct {
	complaints []*models.Complaint
	nextID     int64
}

func (f *fakeComplaintStore) GetAll(_ context.Context) ([]*models.Complaint, error) {
	result := append([]*models.Complaint(nil), f.complaints...)
	sort.Slice(result, func(i, j int) bool { return result[i].ComplaintDate.After(result[j].ComplaintDate) })
	return result, nil
}

func (f *fakeComplaintStore) Create(_ context.Context, complaint *models.Complaint) (int64, error) {
	f.nextID++
	complaint.ComplaintID = f.nextID
	f.complaints = append(f.complaints, complaint)
	return f.nextID, nil
}

func (f *fakeComplaintStore) Resolve(_ context.Context, complaintID int64) error {
	for _, c := range f.complaints {
		if c.ComplaintID == complaintID {
			c.Status = models.ComplaintResolved
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeComplaintStore) CountPending(_ context.Context) (int, error) {
	count := 0
	for _, c := range f.complaints {
		if c.Status == models.ComplaintPending {
			count++
		}
	}
	return count, nil
}

func (f *fakeComplaintStore) GetRecent(_ context.Context, limit uint64) ([]*models.Complaint, error) {
	result := append([]*models.Complaint(nil), f.complaints...)
	sort.Slice(result, func(i, j int) bool { return result[i].ComplaintDate.After(result[j].ComplaintDate) })
	if uint64(len(result)) > limit {
		result = result[:limit]
	}
	return result, nil
}

type fakeUserStore struct {
	users  []*models.User
	nextID int64
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) (int64, error) {
	for _, u := range f.users {
		if u.Username == user.Username {
			return 0, repositories.ErrUsernameTaken
		}
		if u.Email == user.Email {
			return 0, repositories.ErrEmailTaken
		}
	}
	f.nextID++
	user.ID = f.nextID
	f.users = append(f.users, user)
	return f.nextID, nil
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserStore) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, u := range f.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func strPtr(s string) *string { return &s }
