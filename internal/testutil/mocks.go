package testutil

import (
	"sort"
	"time"

	"github.com/K-Harikrishnan-7/Personal-Expense-Tracker/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MockUserRepository is a mock implementation of domain.UserRepository
type MockUserRepository struct {
	Users    map[string]*domain.User
	ByID     map[uuid.UUID]*domain.User
	CreateFn func(auth0ID, email string, name, pictureURL *string) (*domain.User, error)
}

// NewMockUserRepository creates a new MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users: make(map[string]*domain.User),
		ByID:  make(map[uuid.UUID]*domain.User),
	}
}

// GetByID retrieves a user by ID
func (m *MockUserRepository) GetByID(id uuid.UUID) (*domain.User, error) {
	if user, ok := m.ByID[id]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// GetByAuth0ID retrieves a user by Auth0 ID
func (m *MockUserRepository) GetByAuth0ID(auth0ID string) (*domain.User, error) {
	if user, ok := m.Users[auth0ID]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// CreateOrGetByAuth0ID creates or retrieves a user by Auth0 ID
func (m *MockUserRepository) CreateOrGetByAuth0ID(auth0ID, email string, name, pictureURL *string) (*domain.User, error) {
	if m.CreateFn != nil {
		return m.CreateFn(auth0ID, email, name, pictureURL)
	}
	if user, ok := m.Users[auth0ID]; ok {
		return user, nil
	}
	user := &domain.User{
		ID:         uuid.New(),
		Auth0ID:    auth0ID,
		Email:      email,
		Name:       name,
		PictureURL: pictureURL,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	m.Users[auth0ID] = user
	m.ByID[user.ID] = user
	return user, nil
}

// AddUser adds a user to the mock repository (helper for tests)
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.Users[user.Auth0ID] = user
	m.ByID[user.ID] = user
}

// MockCategoryRepository is a mock implementation of domain.CategoryRepository
type MockCategoryRepository struct {
	Categories map[int64]*domain.Category
	NextID     int64
	GetByIDFn  func(ownerID uuid.UUID, id int64) (*domain.Category, error)
}

// NewMockCategoryRepository creates a new MockCategoryRepository
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		Categories: make(map[int64]*domain.Category),
		NextID:     1,
	}
}

// Create creates a new category
func (m *MockCategoryRepository) Create(category *domain.Category) (*domain.Category, error) {
	for _, c := range m.Categories {
		if c.OwnerID == category.OwnerID && c.Name == category.Name {
			return nil, domain.ErrCategoryAlreadyExists
		}
	}
	category.ID = m.NextID
	m.NextID++
	category.CreatedAt = time.Now()
	category.UpdatedAt = time.Now()
	m.Categories[category.ID] = category
	return category, nil
}

// GetByID retrieves a category by ID scoped to an owner
func (m *MockCategoryRepository) GetByID(ownerID uuid.UUID, id int64) (*domain.Category, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ownerID, id)
	}
	if category, ok := m.Categories[id]; ok && category.OwnerID == ownerID {
		return category, nil
	}
	return nil, domain.ErrCategoryNotFound
}

// GetAllByOwner retrieves all of an owner's categories
func (m *MockCategoryRepository) GetAllByOwner(ownerID uuid.UUID) ([]*domain.Category, error) {
	var result []*domain.Category
	for _, category := range m.Categories {
		if category.OwnerID == ownerID {
			result = append(result, category)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// Update renames a category
func (m *MockCategoryRepository) Update(ownerID uuid.UUID, id int64, name string) (*domain.Category, error) {
	category, ok := m.Categories[id]
	if !ok || category.OwnerID != ownerID {
		return nil, domain.ErrCategoryNotFound
	}
	for _, c := range m.Categories {
		if c.ID != id && c.OwnerID == ownerID && c.Name == name {
			return nil, domain.ErrCategoryAlreadyExists
		}
	}
	category.Name = name
	category.UpdatedAt = time.Now()
	return category, nil
}

// Delete removes a category
func (m *MockCategoryRepository) Delete(ownerID uuid.UUID, id int64) error {
	category, ok := m.Categories[id]
	if !ok || category.OwnerID != ownerID {
		return domain.ErrCategoryNotFound
	}
	delete(m.Categories, id)
	return nil
}

// AddCategory adds a category to the mock repository (helper for tests)
func (m *MockCategoryRepository) AddCategory(category *domain.Category) {
	if category.ID >= m.NextID {
		m.NextID = category.ID + 1
	}
	m.Categories[category.ID] = category
}

// MockExpenseRepository is a mock implementation of domain.ExpenseRepository.
// Aggregate queries fold over the in-memory expenses with the same semantics
// as the SQL: inclusive date ranges and exact zero sums when nothing matches.
type MockExpenseRepository struct {
	Expenses   map[int64]*domain.Expense
	NextID     int64
	Categories *MockCategoryRepository
}

// NewMockExpenseRepository creates a new MockExpenseRepository
func NewMockExpenseRepository(categories *MockCategoryRepository) *MockExpenseRepository {
	return &MockExpenseRepository{
		Expenses:   make(map[int64]*domain.Expense),
		NextID:     1,
		Categories: categories,
	}
}

// Create creates a new expense
func (m *MockExpenseRepository) Create(expense *domain.Expense) (*domain.Expense, error) {
	expense.ID = m.NextID
	m.NextID++
	expense.CreatedAt = time.Now()
	expense.UpdatedAt = time.Now()
	m.resolveCategoryName(expense)
	m.Expenses[expense.ID] = expense
	return expense, nil
}

// GetByID retrieves an expense by ID scoped to an owner
func (m *MockExpenseRepository) GetByID(ownerID uuid.UUID, id int64) (*domain.Expense, error) {
	if expense, ok := m.Expenses[id]; ok && expense.OwnerID == ownerID {
		return expense, nil
	}
	return nil, domain.ErrExpenseNotFound
}

// GetByOwner retrieves a filtered, paginated page of an owner's expenses
func (m *MockExpenseRepository) GetByOwner(ownerID uuid.UUID, filters *domain.ExpenseFilters) (*domain.PaginatedExpenses, error) {
	page := int32(1)
	pageSize := int32(domain.DefaultPageSize)
	var matched []*domain.Expense
	for _, expense := range m.Expenses {
		if expense.OwnerID != ownerID {
			continue
		}
		if filters != nil {
			if filters.CategoryID != nil && expense.CategoryID != *filters.CategoryID {
				continue
			}
			if filters.StartDate != nil && expense.Date.Before(*filters.StartDate) {
				continue
			}
			if filters.EndDate != nil && expense.Date.After(*filters.EndDate) {
				continue
			}
		}
		matched = append(matched, expense)
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].Date.Equal(matched[j].Date) {
			return matched[i].Date.After(matched[j].Date)
		}
		return matched[i].ID > matched[j].ID
	})

	if filters != nil {
		if filters.Page > 0 {
			page = filters.Page
		}
		if filters.PageSize > 0 {
			pageSize = filters.PageSize
			if pageSize > domain.MaxPageSize {
				pageSize = domain.MaxPageSize
			}
		}
	}

	totalItems := int64(len(matched))
	totalPages := int32(0)
	if totalItems > 0 {
		totalPages = int32((totalItems + int64(pageSize) - 1) / int64(pageSize))
	}
	offset := int((page - 1) * pageSize)
	if offset > len(matched) {
		offset = len(matched)
	}
	end := offset + int(pageSize)
	if end > len(matched) {
		end = len(matched)
	}

	return &domain.PaginatedExpenses{
		Data:       matched[offset:end],
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}, nil
}

// Update updates an existing expense
func (m *MockExpenseRepository) Update(ownerID uuid.UUID, id int64, data *domain.UpdateExpenseData) (*domain.Expense, error) {
	expense, ok := m.Expenses[id]
	if !ok || expense.OwnerID != ownerID {
		return nil, domain.ErrExpenseNotFound
	}
	expense.CategoryID = data.CategoryID
	expense.Amount = data.Amount
	expense.Description = data.Description
	expense.Date = data.Date
	expense.UpdatedAt = time.Now()
	m.resolveCategoryName(expense)
	return expense, nil
}

// Delete removes an expense
func (m *MockExpenseRepository) Delete(ownerID uuid.UUID, id int64) error {
	expense, ok := m.Expenses[id]
	if !ok || expense.OwnerID != ownerID {
		return domain.ErrExpenseNotFound
	}
	delete(m.Expenses, id)
	return nil
}

// TotalsByCategory sums an owner's expenses grouped by category name
func (m *MockExpenseRepository) TotalsByCategory(ownerID uuid.UUID) ([]*domain.CategorySpending, error) {
	totals := make(map[string]decimal.Decimal)
	for _, expense := range m.Expenses {
		if expense.OwnerID != ownerID {
			continue
		}
		totals[expense.CategoryName] = totals[expense.CategoryName].Add(expense.Amount)
	}
	result := make([]*domain.CategorySpending, 0, len(totals))
	for name, total := range totals {
		result = append(result, &domain.CategorySpending{CategoryName: name, TotalAmount: total})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CategoryName < result[j].CategoryName })
	return result, nil
}

// TotalsByMonth sums an owner's expenses grouped by calendar month, oldest first
func (m *MockExpenseRepository) TotalsByMonth(ownerID uuid.UUID) ([]*domain.MonthlySpending, error) {
	totals := make(map[string]decimal.Decimal)
	for _, expense := range m.Expenses {
		if expense.OwnerID != ownerID {
			continue
		}
		month := expense.Date.Format("2006-01")
		totals[month] = totals[month].Add(expense.Amount)
	}
	result := make([]*domain.MonthlySpending, 0, len(totals))
	for month, total := range totals {
		result = append(result, &domain.MonthlySpending{Month: month, TotalAmount: total})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Month < result[j].Month })
	return result, nil
}

// SumByDateRange sums an owner's expenses dated within [startDate, endDate]
func (m *MockExpenseRepository) SumByDateRange(ownerID uuid.UUID, startDate, endDate time.Time) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, expense := range m.Expenses {
		if expense.OwnerID != ownerID {
			continue
		}
		if expense.Date.Before(startDate) || expense.Date.After(endDate) {
			continue
		}
		sum = sum.Add(expense.Amount)
	}
	return sum, nil
}

// SumByCategoryAndDateRange sums an owner's expenses in one category dated within [startDate, endDate]
func (m *MockExpenseRepository) SumByCategoryAndDateRange(ownerID uuid.UUID, categoryID int64, startDate, endDate time.Time) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, expense := range m.Expenses {
		if expense.OwnerID != ownerID || expense.CategoryID != categoryID {
			continue
		}
		if expense.Date.Before(startDate) || expense.Date.After(endDate) {
			continue
		}
		sum = sum.Add(expense.Amount)
	}
	return sum, nil
}

// AddExpense adds an expense to the mock repository (helper for tests)
func (m *MockExpenseRepository) AddExpense(expense *domain.Expense) {
	if expense.ID >= m.NextID {
		m.NextID = expense.ID + 1
	}
	m.resolveCategoryName(expense)
	m.Expenses[expense.ID] = expense
}

func (m *MockExpenseRepository) resolveCategoryName(expense *domain.Expense) {
	if expense.CategoryName != "" || m.Categories == nil {
		return
	}
	if category, ok := m.Categories.Categories[expense.CategoryID]; ok {
		expense.CategoryName = category.Name
	}
}

// MockBudgetRepository is a mock implementation of domain.BudgetRepository
type MockBudgetRepository struct {
	Budgets  map[int64]*domain.Budget
	NextID   int64
	GetAllFn func(ownerID uuid.UUID) ([]*domain.Budget, error)
}

// NewMockBudgetRepository creates a new MockBudgetRepository
func NewMockBudgetRepository() *MockBudgetRepository {
	return &MockBudgetRepository{
		Budgets: make(map[int64]*domain.Budget),
		NextID:  1,
	}
}

// Create creates a new budget
func (m *MockBudgetRepository) Create(budget *domain.Budget) (*domain.Budget, error) {
	budget.ID = m.NextID
	m.NextID++
	budget.CreatedAt = time.Now()
	budget.UpdatedAt = time.Now()
	m.Budgets[budget.ID] = budget
	return budget, nil
}

// GetByID retrieves a budget by ID scoped to an owner
func (m *MockBudgetRepository) GetByID(ownerID uuid.UUID, id int64) (*domain.Budget, error) {
	if budget, ok := m.Budgets[id]; ok && budget.OwnerID == ownerID {
		return budget, nil
	}
	return nil, domain.ErrBudgetNotFound
}

// GetAllByOwner retrieves all of an owner's budgets in insertion order
func (m *MockBudgetRepository) GetAllByOwner(ownerID uuid.UUID) ([]*domain.Budget, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ownerID)
	}
	var result []*domain.Budget
	for _, budget := range m.Budgets {
		if budget.OwnerID == ownerID {
			result = append(result, budget)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Update updates an existing budget
func (m *MockBudgetRepository) Update(ownerID uuid.UUID, id int64, data *domain.UpdateBudgetData) (*domain.Budget, error) {
	budget, ok := m.Budgets[id]
	if !ok || budget.OwnerID != ownerID {
		return nil, domain.ErrBudgetNotFound
	}
	budget.Amount = data.Amount
	budget.StartDate = data.StartDate
	budget.EndDate = data.EndDate
	budget.CategoryID = data.CategoryID
	budget.UpdatedAt = time.Now()
	return budget, nil
}

// Delete removes a budget
func (m *MockBudgetRepository) Delete(ownerID uuid.UUID, id int64) error {
	budget, ok := m.Budgets[id]
	if !ok || budget.OwnerID != ownerID {
		return domain.ErrBudgetNotFound
	}
	delete(m.Budgets, id)
	return nil
}

// AddBudget adds a budget to the mock repository (helper for tests)
func (m *MockBudgetRepository) AddBudget(budget *domain.Budget) {
	if budget.ID >= m.NextID {
		m.NextID = budget.ID + 1
	}
	m.Budgets[budget.ID] = budget
}
