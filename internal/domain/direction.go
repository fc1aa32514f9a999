package domain

type TransactionDirection string

const (
	DirectionDeposit  TransactionDirection = "DEPOSIT"
	DirectionWithdraw TransactionDirection = "WITHDRAW"
)

// Numeric transaction codes as the command surface reads them.
const (
	DepositCode  = 1
	WithdrawCode = 0
)

// ParseDirectionCode maps a numeric transaction code to its direction.
// Any code other than 1 or 0 is rejected.
func ParseDirectionCode(code int) (TransactionDirection, error) {
	switch code {
	case DepositCode:
		return DirectionDeposit, nil
	case WithdrawCode:
		return DirectionWithdraw, nil
	default:
		return "", ErrInvalidDirection
	}
}

func (d TransactionDirection) String() string {
	return string(d)
}
