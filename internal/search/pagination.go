package search

// Page описывает одну страницу элементов.
type Page[T any] struct {
	Items      []T // элементы на текущей странице
	Page       int // номер страницы (с 1)
	PageSize   int // количество элементов на странице
	Total      int // общее количество элементов
	TotalPages int // ceil(Total / PageSize); 0 при пустой выдаче
	HasNext    bool
	HasPrev    bool
}

// Paginate возвращает срез items для указанной страницы и метаданные.
// page нумеруется с 1. Запрос страницы за последней — пустой срез,
// не ошибка.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	total := len(items)

	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}

	totalPages := (total + pageSize - 1) / pageSize

	// при очень большом page произведение переполняется и уходит в минус,
	// поэтому отрицательный offset тоже схлопываем к пустой странице
	start := (page - 1) * pageSize
	if start < 0 || start > total {
		start = total
	}

	end := start + pageSize
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[start:end],
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    end < total,
		HasPrev:    page > 1,
	}
}
