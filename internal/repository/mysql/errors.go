package mysql

import (
	"errors"

	"furniture-store/internal/domain"

	mysqldrv "github.com/go-sql-driver/mysql"
)

// MySQL error numbers for constraint violations.
const (
	dupEntry        = 1062 // ER_DUP_ENTRY
	noReferencedRow = 1452 // ER_NO_REFERENCED_ROW_2
	rowIsReferenced = 1451 // ER_ROW_IS_REFERENCED_2
)

func translateError(err error) error {
	var myErr *mysqldrv.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case dupEntry:
			return domain.ErrDuplicateID
		case noReferencedRow:
			return domain.ErrInvalidReference
		case rowIsReferenced:
			return domain.ErrProductReferenced
		}
	}
	return err
}
