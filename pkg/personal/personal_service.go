package personal

import (
	"career-bridge/domain"
	"career-bridge/entities"
	"career-bridge/internal/utils/storage"
	"career-bridge/pkg/points"
	"context"
	"errors"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const profilePhotoFolder = "profile-photos"

type (
	PersonalService interface {
		SavePersonalDetails(ctx context.Context, req domain.SavePersonalDetailsRequest, userID string) (*domain.PersonalDetails, domain.PointsAward, error)
		UpdatePersonalDetails(ctx context.Context, req domain.PersonalDetailsRequest, userID string) (*domain.PersonalDetails, domain.PointsAward, error)
		UpdateProfilePhoto(ctx context.Context, photo *multipart.FileHeader, userID string) (*domain.PersonalDetails, error)
		GetLatestByUser(ctx context.Context, userID string) (*domain.PersonalDetails, error)
		GetAllByUser(ctx context.Context, userID string) ([]*domain.PersonalDetails, error)
		GetByID(ctx context.Context, id string, userID string, role string) (*domain.PersonalDetails, error)
		GetAll(ctx context.Context, page, limit int) ([]*domain.PersonalDetails, int64, error)
	}

	personalService struct {
		personalRepository PersonalRepository
		pointsService      points.PointsService
		storage            storage.FileStorage
		log                *zerolog.Logger
	}
)

func NewPersonalService(personalRepository PersonalRepository, pointsService points.PointsService, fileStorage storage.FileStorage, log *zerolog.Logger) PersonalService {
	return &personalService{
		personalRepository: personalRepository,
		pointsService:      pointsService,
		storage:            fileStorage,
		log:                log,
	}
}

func (s *personalService) SavePersonalDetails(ctx context.Context, req domain.SavePersonalDetailsRequest, userID string) (*domain.PersonalDetails, domain.PointsAward, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.PointsAward{}, domain.ErrParseUUID
	}

	details := &entities.PersonalDetails{
		ID:     uuid.New(),
		UserID: userUUID,
		Timestamp: entities.Timestamp{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
	applyPersonal(details, req.Data)

	if req.ProfilePhoto != nil {
		objectKey, err := s.storage.UploadFile(uuid.NewString(), req.ProfilePhoto, profilePhotoFolder, storage.AllowImage...)
		if err != nil {
			return nil, domain.PointsAward{}, err
		}
		details.ProfilePhotoPath = objectKey
	}

	if err := s.personalRepository.Create(ctx, details); err != nil {
		if details.ProfilePhotoPath != "" {
			if delErr := s.storage.DeleteFile(details.ProfilePhotoPath); delErr != nil {
				s.log.Warn().Err(delErr).Str("object_key", details.ProfilePhotoPath).Msg("failed to discard profile photo")
			}
		}
		return nil, domain.PointsAward{}, err
	}

	award := points.AwardActivity(ctx, s.pointsService, s.log, userID,
		domain.ActivityPersonalForm, "Completed personal details form", domain.MessagePointsPersonalForm)
	return s.toPersonalDetails(details), award, nil
}

func (s *personalService) UpdatePersonalDetails(ctx context.Context, req domain.PersonalDetailsRequest, userID string) (*domain.PersonalDetails, domain.PointsAward, error) {
	details, err := s.latest(ctx, userID)
	if err != nil {
		return nil, domain.PointsAward{}, err
	}

	applyPersonal(details, req)
	details.UpdatedAt = time.Now()
	if err := s.personalRepository.Save(ctx, details); err != nil {
		return nil, domain.PointsAward{}, err
	}

	award := points.AwardActivity(ctx, s.pointsService, s.log, userID,
		domain.ActivityPersonalUpdate, "Updated personal details form", domain.MessagePointsPersonalUpdate)
	return s.toPersonalDetails(details), award, nil
}

func (s *personalService) UpdateProfilePhoto(ctx context.Context, photo *multipart.FileHeader, userID string) (*domain.PersonalDetails, error) {
	if photo == nil {
		return nil, domain.ErrProfilePhotoRequired
	}

	details, err := s.latest(ctx, userID)
	if err != nil {
		return nil, err
	}

	objectKey, err := s.storage.UploadFile(uuid.NewString(), photo, profilePhotoFolder, storage.AllowImage...)
	if err != nil {
		return nil, err
	}

	previous := details.ProfilePhotoPath
	details.ProfilePhotoPath = objectKey
	details.UpdatedAt = time.Now()
	if err := s.personalRepository.Save(ctx, details); err != nil {
		return nil, err
	}

	if previous != "" {
		if err := s.storage.DeleteFile(previous); err != nil {
			s.log.Warn().Err(err).Str("object_key", previous).Msg("failed to delete previous profile photo")
		}
	}
	return s.toPersonalDetails(details), nil
}

func (s *personalService) GetLatestByUser(ctx context.Context, userID string) (*domain.PersonalDetails, error) {
	details, err := s.latest(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toPersonalDetails(details), nil
}

func (s *personalService) GetAllByUser(ctx context.Context, userID string) ([]*domain.PersonalDetails, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	rows, err := s.personalRepository.GetAllByUser(ctx, userUUID)
	if err != nil {
		return nil, err
	}
	return s.toPersonalDetailsList(rows), nil
}

func (s *personalService) GetByID(ctx context.Context, id string, userID string, role string) (*domain.PersonalDetails, error) {
	detailsUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrPersonalDetailsNotFound
	}

	details, err := s.personalRepository.GetByID(ctx, detailsUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPersonalDetailsNotFound
		}
		return nil, err
	}
	if role != domain.RoleAdmin && details.UserID.String() != userID {
		return nil, domain.ErrPersonalDetailsNotFound
	}
	return s.toPersonalDetails(details), nil
}

func (s *personalService) GetAll(ctx context.Context, page, limit int) ([]*domain.PersonalDetails, int64, error) {
	rows, count, err := s.personalRepository.GetAll(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}
	return s.toPersonalDetailsList(rows), count, nil
}

func (s *personalService) latest(ctx context.Context, userID string) (*entities.PersonalDetails, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	details, err := s.personalRepository.GetLatestByUser(ctx, userUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPersonalDetailsNotFound
		}
		return nil, err
	}
	return details, nil
}

func set(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func applyPersonal(d *entities.PersonalDetails, req domain.PersonalDetailsRequest) {
	set(&d.Name, req.Name)
	set(&d.Email, req.Email)
	set(&d.Phone, req.Phone)
	set(&d.DateOfBirth, req.DateOfBirth)
	if req.Age != nil {
		d.Age = req.Age
	}
	set(&d.Gender, req.Gender)
	set(&d.MaritalStatus, req.MaritalStatus)

	set(&d.Address, req.Address)
	set(&d.City, req.City)
	set(&d.State, req.State)
	set(&d.Pincode, req.Pincode)
	set(&d.Country, req.Country)

	set(&d.AadharNumber, req.AadharNumber)
	set(&d.Nationality, req.Nationality)
	set(&d.Religion, req.Religion)
	set(&d.Category, req.Category)
	set(&d.BloodGroup, req.BloodGroup)

	set(&d.FatherName, req.FatherName)
	set(&d.FatherOccupation, req.FatherOccupation)
	set(&d.FatherPhone, req.FatherPhone)
	set(&d.MotherName, req.MotherName)
	set(&d.MotherOccupation, req.MotherOccupation)
	set(&d.MotherPhone, req.MotherPhone)
	set(&d.GuardianName, req.GuardianName)
	set(&d.GuardianRelation, req.GuardianRelation)
	set(&d.GuardianPhone, req.GuardianPhone)
	set(&d.GuardianAddress, req.GuardianAddress)

	set(&d.EmergencyContactName, req.EmergencyContactName)
	set(&d.EmergencyContactPhone, req.EmergencyContactPhone)
	set(&d.EmergencyContactRelation, req.EmergencyContactRelation)
}

func (s *personalService) toPersonalDetailsList(rows []*entities.PersonalDetails) []*domain.PersonalDetails {
	result := make([]*domain.PersonalDetails, 0, len(rows))
	for _, row := range rows {
		result = append(result, s.toPersonalDetails(row))
	}
	return result
}

func (s *personalService) toPersonalDetails(d *entities.PersonalDetails) *domain.PersonalDetails {
	photo := ""
	if d.ProfilePhotoPath != "" {
		photo = s.storage.GetPublicLinkKey(d.ProfilePhotoPath)
	}

	return &domain.PersonalDetails{
		ID:           d.ID.String(),
		UserID:       d.UserID.String(),
		ProfilePhoto: photo,

		Name:          d.Name,
		Email:         d.Email,
		Phone:         d.Phone,
		DateOfBirth:   d.DateOfBirth,
		Age:           d.Age,
		Gender:        d.Gender,
		MaritalStatus: d.MaritalStatus,

		Address: d.Address,
		City:    d.City,
		State:   d.State,
		Pincode: d.Pincode,
		Country: d.Country,

		AadharNumber: d.AadharNumber,
		Nationality:  d.Nationality,
		Religion:     d.Religion,
		Category:     d.Category,
		BloodGroup:   d.BloodGroup,

		FatherName:       d.FatherName,
		FatherOccupation: d.FatherOccupation,
		FatherPhone:      d.FatherPhone,
		MotherName:       d.MotherName,
		MotherOccupation: d.MotherOccupation,
		MotherPhone:      d.MotherPhone,
		GuardianName:     d.GuardianName,
		GuardianRelation: d.GuardianRelation,
		GuardianPhone:    d.GuardianPhone,
		GuardianAddress:  d.GuardianAddress,

		EmergencyContactName:     d.EmergencyContactName,
		EmergencyContactPhone:    d.EmergencyContactPhone,
		EmergencyContactRelation: d.EmergencyContactRelation,

		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
