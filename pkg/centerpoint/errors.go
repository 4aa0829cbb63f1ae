package centerpoint

import "github.com/pkg/errors"

var (
	// ErrDegenerateInput - точек меньше, чем нужно алгоритму (или все они на одной прямой)
	ErrDegenerateInput = errors.New("degenerate input")
	// ErrEmptySet - запрос к пустому множеству
	ErrEmptySet = errors.New("point set is empty")
	// ErrBoundaryNonTerminating - вращение прямой не вернулось к стартовой за 4n^2 шагов
	ErrBoundaryNonTerminating = errors.New("boundary sweep did not terminate")
	// ErrDegenerateLine - прямая по двум совпадающим точкам
	ErrDegenerateLine = errors.New("line endpoints coincide")
	// ErrInsufficientRange - в диапазоне не хватает свободных целых точек
	ErrInsufficientRange = errors.New("not enough free points in range")
)
