package formula

import "math"

// Interest earned on a principal.
type Interest struct {
	Interest    float64 `json:"interest"`
	FinalAmount float64 `json:"finalAmount"`
}

// SimpleInterest computes I = Prt with r as a percentage per year.
func SimpleInterest(principal, ratePercent, years float64) (Interest, error) {
	if err := money(principal, ratePercent, years); err != nil {
		return Interest{}, err
	}
	i := principal * ratePercent / 100 * years
	return Interest{Interest: i, FinalAmount: principal + i}, nil
}

// CompoundInterest computes MV = P(1 + r/n)^(nt) with r as a percentage per
// year and n compounding periods per year.
func CompoundInterest(principal, ratePercent, years, periodsPerYear float64) (Interest, error) {
	if err := money(principal, ratePercent, years); err != nil {
		return Interest{}, err
	}
	if periodsPerYear < 1 || periodsPerYear != math.Trunc(periodsPerYear) {
		return Interest{}, invalid("compounding periods per year must be a whole number of at least 1")
	}
	mv := principal * math.Pow(1+ratePercent/100/periodsPerYear, periodsPerYear*years)
	return Interest{Interest: mv - principal, FinalAmount: mv}, nil
}

// Instalment is the repayment schedule of a flat-rate loan.
type Instalment struct {
	TotalInterest     float64 `json:"totalInterest"`
	TotalRepayment    float64 `json:"totalRepayment"`
	MonthlyInstalment float64 `json:"monthlyInstalment"`
}

// FlatRateInstalment computes A = P + Prt and the monthly instalment A/(12t).
func FlatRateInstalment(principal, ratePercent, years float64) (Instalment, error) {
	if err := money(principal, ratePercent, years); err != nil {
		return Instalment{}, err
	}
	if years == 0 {
		return Instalment{}, undefined("the loan period must be greater than zero")
	}
	interest := principal * ratePercent / 100 * years
	total := principal + interest
	return Instalment{
		TotalInterest:     interest,
		TotalRepayment:    total,
		MonthlyInstalment: total / (years * 12),
	}, nil
}

// ROI is the return on an investment.
type ROI struct {
	Return        float64 `json:"return"`
	ReturnPercent float64 `json:"roiPercent"`
}

// ReturnOnInvestment computes (final value + income − cost)/cost × 100%.
func ReturnOnInvestment(cost, finalValue, income float64) (ROI, error) {
	if err := requirePositive("investment cost", cost); err != nil {
		return ROI{}, err
	}
	gain := finalValue + income - cost
	return ROI{Return: gain, ReturnPercent: gain / cost * 100}, nil
}

// Budget compares income with expenses.
type Budget struct {
	TotalExpenses  float64 `json:"totalExpenses"`
	Surplus        float64 `json:"surplus"`
	Status         string  `json:"status"`
	SavingsPercent float64 `json:"savingsPercent"`
}

// MonthlyBudget sums expenses and reports a surplus or deficit.
func MonthlyBudget(income float64, expenses []float64) (Budget, error) {
	if err := requirePositive("income", income); err != nil {
		return Budget{}, err
	}
	total := 0.0
	for _, e := range expenses {
		if e < 0 {
			return Budget{}, invalid("expenses must not be negative")
		}
		total += e
	}
	surplus := income - total
	status := "balanced"
	switch {
	case surplus > 0:
		status = "surplus"
	case surplus < 0:
		status = "deficit"
	}
	return Budget{TotalExpenses: total, Surplus: surplus, Status: status, SavingsPercent: surplus / income * 100}, nil
}

// SavingsPlan is the monthly amount needed to reach a goal.
type SavingsPlan struct {
	MonthlySaving float64 `json:"monthlySaving"`
	Shortfall     float64 `json:"shortfall"`
}

// SavingsGoal spreads (target − already saved) evenly over months.
func SavingsGoal(target, months, saved float64) (SavingsPlan, error) {
	if err := requirePositive("months", months); err != nil {
		return SavingsPlan{}, err
	}
	short := math.Max(0, target-saved)
	return SavingsPlan{MonthlySaving: short / months, Shortfall: short}, nil
}

func money(principal, rate, years float64) error {
	if principal < 0 || rate < 0 || years < 0 {
		return undefined("principal, rate and period must not be negative")
	}
	return nil
}
