package trainer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/internal/employee"
	"github.com/DhavalSuthar-24/sportcomplex/internal/position"
	"github.com/DhavalSuthar-24/sportcomplex/internal/sporttype"
	"github.com/DhavalSuthar-24/sportcomplex/internal/store"
	"github.com/DhavalSuthar-24/sportcomplex/internal/testutil"
)

type TrainerServiceSuite struct {
	suite.Suite
	ctx      context.Context
	repo     *testutil.SpyRepository[Trainer]
	service  *Service
	staff    *employee.Employee
	football *sporttype.SportType
	tennis   *sporttype.SportType
}

func TestTrainerServiceSuite(t *testing.T) {
	suite.Run(t, new(TrainerServiceSuite))
}

func (s *TrainerServiceSuite) SetupTest() {
	db := testutil.NewDB(s.T(), &position.Position{}, &sporttype.SportType{}, &employee.Employee{}, &Trainer{})
	s.ctx = context.Background()
	s.repo = testutil.Spy(store.NewRepository[Trainer](db))
	s.service = NewService(s.repo)

	coach, err := position.NewService(store.NewRepository[position.Position](db)).
		Add(s.ctx, &position.Position{Name: "Coach"})
	s.Require().NoError(err)
	s.staff, err = employee.NewService(store.NewRepository[employee.Employee](db)).
		Add(s.ctx, &employee.Employee{FirstName: "Sam", LastName: "Ray", ComplexID: 1, PersonID: "P-5", PositionID: coach.ID})
	s.Require().NoError(err)

	types := sporttype.NewService(store.NewRepository[sporttype.SportType](db))
	s.football, err = types.Add(s.ctx, &sporttype.SportType{Name: "Football"})
	s.Require().NoError(err)
	s.tennis, err = types.Add(s.ctx, &sporttype.SportType{Name: "Tennis"})
	s.Require().NoError(err)
}

func (s *TrainerServiceSuite) TestOneRolePerEmployeePerComplex() {
	_, err := s.service.Add(s.ctx, &Trainer{ComplexID: 1, EmployeeID: 5, SportTypeID: s.football.ID})
	s.Require().NoError(err)

	_, err = s.service.Add(s.ctx, &Trainer{ComplexID: 1, EmployeeID: 5, SportTypeID: s.tennis.ID})
	s.Require().Error(err)
	s.True(common.IsResourceExists(err))
	s.Equal("Employee is already trainer", err.Error())

	other, err := s.service.Add(s.ctx, &Trainer{ComplexID: 2, EmployeeID: 5, SportTypeID: s.football.ID})
	s.Require().NoError(err)
	s.NotZero(other.ID)
}

func (s *TrainerServiceSuite) TestReadsResolveEmployeeAndSportType() {
	t, err := s.service.Add(s.ctx, &Trainer{ComplexID: 1, EmployeeID: s.staff.ID, SportTypeID: s.tennis.ID})
	s.Require().NoError(err)

	got, err := s.service.Get(s.ctx, t.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got.SportType)
	s.Equal("Tennis", got.SportType.Name)
	s.Require().NotNil(got.Employee)
	s.Require().NotNil(got.Employee.Position)
	s.Equal("Coach", got.Employee.Position.Name)

	byEmployee, err := s.service.GetByEmployee(s.ctx, 1, s.staff.ID)
	s.Require().NoError(err)
	s.Equal(t.ID, byEmployee.ID)

	_, err = s.service.GetByEmployee(s.ctx, 2, s.staff.ID)
	s.True(common.IsNotFound(err))
}

func (s *TrainerServiceSuite) TestFilters() {
	for _, tr := range []Trainer{
		{ComplexID: 1, EmployeeID: 10, SportTypeID: s.football.ID},
		{ComplexID: 1, EmployeeID: 11, SportTypeID: s.tennis.ID},
		{ComplexID: 1, EmployeeID: 12, SportTypeID: s.football.ID},
		{ComplexID: 2, EmployeeID: 10, SportTypeID: s.football.ID},
	} {
		_, err := s.service.Add(s.ctx, &tr)
		s.Require().NoError(err)
	}

	complexOne, err := s.service.ListByComplex(s.ctx, 1)
	s.Require().NoError(err)
	s.Len(complexOne, 3)

	football, err := s.service.ListBySportType(s.ctx, 1, s.football.ID)
	s.Require().NoError(err)
	s.Len(football, 2)

	all, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 4)
}

func (s *TrainerServiceSuite) TestUpdateAndDelete() {
	t, err := s.service.Add(s.ctx, &Trainer{ComplexID: 1, EmployeeID: s.staff.ID, SportTypeID: s.football.ID})
	s.Require().NoError(err)

	updated, err := s.service.Update(s.ctx, t.ID, Patch{SportTypeID: s.tennis.ID})
	s.Require().NoError(err)
	s.Equal(s.tennis.ID, updated.SportTypeID)
	s.Equal(s.staff.ID, updated.EmployeeID)
	s.Require().NotNil(updated.SportType)
	s.Equal("Tennis", updated.SportType.Name)
	s.Require().NotNil(updated.Employee)
	s.Require().NotNil(updated.Employee.Position)
	s.Equal("Coach", updated.Employee.Position.Name)

	writes := s.repo.Writes()
	_, err = s.service.Update(s.ctx, 999, Patch{SportTypeID: s.tennis.ID})
	s.True(common.IsNotFound(err))
	s.Equal(writes, s.repo.Writes(), "a missing trainer is never written")

	deleted, err := s.service.Delete(s.ctx, t.ID)
	s.Require().NoError(err)
	s.Equal("Tennis", deleted.SportType.Name)

	_, err = s.service.Get(s.ctx, t.ID)
	s.True(common.IsNotFound(err))
}
