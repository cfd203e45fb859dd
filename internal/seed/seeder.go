// Package seed loads reference data and committee rosters from YAML through
// the service layer, so every seeded assignment passes the same slot checks
// as one proposed over HTTP.
package seed

import (
	"context"
	"fmt"
	"sort"

	apperrors "committee-tracker-backend/internal/errors"
	"committee-tracker-backend/internal/logger"
	"committee-tracker-backend/internal/service"
)

const committeeLookupPageSize = 100

// Counts reports how many entries of one kind were created and how many the
// document held
type Counts struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
	Total   int `json:"total"`
}

// Summary is the outcome of a seed run
type Summary struct {
	SenateDivisions Counts `json:"senate_divisions"`
	Departments     Counts `json:"departments"`
	Faculty         Counts `json:"faculty"`
	Committees      Counts `json:"committees"`
	Assignments     Counts `json:"assignments"`
	// Rejected counts proposals refused by the slot checks
	Rejected int `json:"rejected"`
}

// Seeder writes a Document through the services
type Seeder struct {
	divisions   service.SenateDivisionServiceInterface
	departments service.DepartmentServiceInterface
	faculty     service.FacultyServiceInterface
	committees  service.CommitteeServiceInterface
	assignments service.AssignmentServiceInterface
}

func NewSeeder(
	divisions service.SenateDivisionServiceInterface,
	departments service.DepartmentServiceInterface,
	faculty service.FacultyServiceInterface,
	committees service.CommitteeServiceInterface,
	assignments service.AssignmentServiceInterface,
) *Seeder {
	return &Seeder{
		divisions:   divisions,
		departments: departments,
		faculty:     faculty,
		committees:  committees,
		assignments: assignments,
	}
}

// Load seeds doc in dependency order. Entries that already exist are skipped
// and capacity rejections are counted, so a document can be loaded more than
// once. Any other error aborts the run.
func (s *Seeder) Load(ctx context.Context, doc *Document) (*Summary, error) {
	log := logger.WithContext(ctx)
	summary := &Summary{}

	for _, d := range doc.SenateDivisions {
		_, err := s.divisions.Create(&service.CreateSenateDivisionRequest{Code: d.Code, Name: d.Name})
		if err := tally(&summary.SenateDivisions, err); err != nil {
			return summary, fmt.Errorf("senate division %s: %w", d.Code, err)
		}
	}
	log.Infof("Senate divisions: %d created, %d total", summary.SenateDivisions.Created, summary.SenateDivisions.Total)

	for _, d := range doc.Departments {
		_, err := s.departments.Create(&service.CreateDepartmentRequest{Code: d.Code, Name: d.Name})
		if err := tally(&summary.Departments, err); err != nil {
			return summary, fmt.Errorf("department %s: %w", d.Code, err)
		}
	}
	log.Infof("Departments: %d created, %d total", summary.Departments.Created, summary.Departments.Total)

	for _, f := range doc.Faculty {
		req := &service.CreateFacultyRequest{
			Email:              f.Email,
			FullName:           f.FullName,
			JobTitle:           f.JobTitle,
			Phone:              f.Phone,
			SenateDivisionCode: f.SenateDivision,
		}
		if f.Department != "" {
			department := f.Department
			req.DepartmentCode = &department
		}
		_, err := s.faculty.Create(req)
		if err := tally(&summary.Faculty, err); err != nil {
			return summary, fmt.Errorf("faculty %s: %w", f.Email, err)
		}
	}
	log.Infof("Faculty: %d created, %d total", summary.Faculty.Created, summary.Faculty.Total)

	for _, c := range doc.Committees {
		id, err := s.ensureCommittee(ctx, &c, &summary.Committees)
		if err != nil {
			return summary, fmt.Errorf("committee %s: %w", c.Name, err)
		}

		for _, m := range c.Members {
			_, err := s.assignments.ProposeAssignment(ctx, &service.ProposeAssignmentRequest{
				FacultyEmail: m.Email,
				CommitteeID:  id,
				StartDate:    m.StartDate,
				EndDate:      m.EndDate,
			})
			if apperrors.IsCapacity(err) {
				summary.Rejected++
				summary.Assignments.Total++
				log.WithFields(map[string]interface{}{
					"committee": c.Name,
					"email":     m.Email,
				}).Warnf("Assignment rejected: %v", err)
				continue
			}
			if err := tally(&summary.Assignments, err); err != nil {
				return summary, fmt.Errorf("assignment %s to %s: %w", m.Email, c.Name, err)
			}
		}
	}
	log.Infof("Committees: %d created, %d total", summary.Committees.Created, summary.Committees.Total)
	log.Infof("Assignments: %d created, %d rejected, %d total",
		summary.Assignments.Created, summary.Rejected, summary.Assignments.Total)

	return summary, nil
}

// ensureCommittee creates c, or finds the existing committee of the same name
func (s *Seeder) ensureCommittee(ctx context.Context, c *CommitteeData, counts *Counts) (uint, error) {
	req := &service.CreateCommitteeRequest{
		Name:        c.Name,
		Description: c.Description,
		TotalSlots:  c.TotalSlots,
	}
	codes := make([]string, 0, len(c.SlotRequirements))
	for code := range c.SlotRequirements {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		req.SlotRequirements = append(req.SlotRequirements, service.SlotRequirementRequest{
			SenateDivisionCode: code,
			SlotRequirements:   c.SlotRequirements[code],
		})
	}

	created, err := s.committees.Create(ctx, req)
	if err := tally(counts, err); err != nil {
		return 0, err
	}
	if created != nil {
		return created.ID, nil
	}

	return s.findCommittee(c.Name)
}

func (s *Seeder) findCommittee(name string) (uint, error) {
	for page := 1; ; page++ {
		list, err := s.committees.GetAll(page, committeeLookupPageSize)
		if err != nil {
			return 0, err
		}
		for _, committee := range list.Committees {
			if committee.Name == name {
				return committee.ID, nil
			}
		}
		if int64(page*committeeLookupPageSize) >= list.Total || len(list.Committees) == 0 {
			return 0, apperrors.ErrCommitteeNotFound
		}
	}
}

// tally records the outcome of one create call. Already-existing entries are
// skipped; any other error is returned.
func tally(counts *Counts, err error) error {
	counts.Total++
	switch {
	case err == nil:
		counts.Created++
	case apperrors.IsAlreadyExists(err):
		counts.Skipped++
	default:
		return err
	}
	return nil
}
