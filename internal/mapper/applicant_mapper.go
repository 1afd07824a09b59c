package mapper

import (
	"interview-eval-be/internal/entity"
	"interview-eval-be/internal/model"
)

type ApplicantMapper struct{}

func NewApplicantMapper() *ApplicantMapper {
	return &ApplicantMapper{}
}

func (m *ApplicantMapper) ToEntity(a *model.Applicant) *entity.Applicant {
	if a == nil {
		return nil
	}
	return &entity.Applicant{
		Id:                a.ApplicantId,
		Name:              a.ApplicantName,
		InterviewStatus:   entity.InterviewStatus(a.InterviewStatus),
		JobRoleId:         a.JobRoleId,
		SessionId:         a.SessionId,
		StartedAt:         a.StartedAt,
		CompletedAt:       a.CompletedAt,
		TotalScore:        a.TotalScore,
		IndividualPdfPath: a.IndividualPdfPath,
		IndividualQnaPath: a.IndividualQnaPath,
		TotalComment:      a.TotalComment,
		NextCheckpoint:    a.NextCheckpoint,
	}
}

func (m *ApplicantMapper) ToModel(a *entity.Applicant) *model.Applicant {
	if a == nil {
		return nil
	}
	return &model.Applicant{
		ApplicantId:       a.Id,
		ApplicantName:     a.Name,
		InterviewStatus:   string(a.InterviewStatus),
		JobRoleId:         a.JobRoleId,
		SessionId:         a.SessionId,
		StartedAt:         a.StartedAt,
		CompletedAt:       a.CompletedAt,
		TotalScore:        a.TotalScore,
		IndividualPdfPath: a.IndividualPdfPath,
		IndividualQnaPath: a.IndividualQnaPath,
		TotalComment:      a.TotalComment,
		NextCheckpoint:    a.NextCheckpoint,
	}
}
