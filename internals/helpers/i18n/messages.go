package i18n

// Message catalogs. Params use universal-translator placeholders ({0}, {1}, ...).
var messagesEN = map[string]string{
	// generic responses
	"msg.ok":                "ok",
	"msg.created":           "Created",
	"msg.updated":           "Updated",
	"msg.deleted":           "Deleted",
	"msg.invalid_id":        "Invalid ID",
	"msg.invalid_payload":   "Invalid payload",
	"msg.invalid_query":     "Invalid query",
	"msg.not_found":         "Data not found",
	"msg.validation_failed": "Validation failed",
	"msg.unknown_entity":    "Unknown entity: {0}",
	"msg.unauthorized":      "Unauthorized",
	"msg.forbidden":         "You are not allowed to perform this action",
	"msg.permission_needed": "Permission required: {0}",
	"msg.rate_limited":      "Too many requests. Please try again later.",

	// database
	"msg.db.fk_violation":     "Referenced record does not exist",
	"msg.db.unique_violation": "Duplicate data",
	"msg.db.check_violation":  "Value violates a database constraint",
	"msg.db.error":            "Database error",

	// auth
	"msg.login.ok":       "Login successful",
	"msg.login.invalid":  "Invalid identifier or password",
	"msg.login.inactive": "Your account has been deactivated",
	"msg.logout.ok":      "Logout successful",
	"msg.user.created":   "User created",
	"msg.user.updated":   "User updated",

	// catalog
	"msg.genre.created":          "Genre created",
	"msg.genre.updated":          "Genre updated",
	"msg.genre.deleted":          "Genre deleted",
	"msg.author.created":         "Author created",
	"msg.author.updated":         "Author updated",
	"msg.author.deleted":         "Author deleted",
	"msg.book.created":           "Book created",
	"msg.book.updated":           "Book updated",
	"msg.book.deleted":           "Book deleted",
	"msg.book.unknown_genres":    "Unknown genre IDs: {0}",
	"msg.book_instance.created":  "Book copy created",
	"msg.book_instance.updated":  "Book copy updated",
	"msg.book_instance.deleted":  "Book copy deleted",
	"msg.book_instance.returned": "Book marked as returned",
	"msg.book_instance.renewed":  "Due date renewed",

	// field validation
	"author.date_of_birth.too_young":  "Author must be at least 18 years old.",
	"author.date_of_death.not_past":   "Date of death cannot be later than yesterday.",
	"book_instance.due_back.past":     "Invalid date - renewal in past.",
	"book_instance.due_back.too_far":  "Invalid date - renewal more than {0} weeks ahead.",
	"book_instance.due_back.required": "Due date is required.",
	"date.invalid":                    "Date must use the YYYY-MM-DD format.",

	// loan status
	"status.m": "Maintenance",
	"status.o": "On loan",
	"status.a": "Available",
	"status.r": "Reserved",

	// permissions
	"permission.can_mark_returned": "Set book as returned",

	// admin metadata: entities
	"entity.genre":         "Genre",
	"entity.author":        "Author",
	"entity.book":          "Book",
	"entity.book_instance": "Book instance",

	// admin metadata: fields
	"field.genre.name.label":                "Name",
	"field.genre.name.help":                 "Enter a book genre (e.g. Science Fiction, French Poetry etc.)",
	"field.author.first_name.label":         "First name",
	"field.author.last_name.label":          "Last name",
	"field.author.date_of_birth.label":      "Date of birth",
	"field.author.date_of_death.label":      "Died",
	"field.book.title.label":                "Title",
	"field.book.author_id.label":            "Author",
	"field.book.summary.label":              "Summary",
	"field.book.summary.help":               "Enter a brief description of the book",
	"field.book.isbn.label":                 "ISBN",
	"field.book.isbn.help":                  "13 Character ISBN number",
	"field.book.genre_ids.label":            "Genre",
	"field.book.genre_ids.help":             "Select a genre for this book",
	"field.book_instance.id.label":          "ID",
	"field.book_instance.id.help":           "Unique ID for this particular book across the whole library",
	"field.book_instance.book_id.label":     "Book",
	"field.book_instance.imprint.label":     "Imprint",
	"field.book_instance.due_back.label":    "Due back",
	"field.book_instance.status.label":      "Status",
	"field.book_instance.status.help":       "Book availability",
	"field.book_instance.borrower_id.label": "Borrower",
}

var messagesRU = map[string]string{
	"msg.ok":                "ok",
	"msg.created":           "Создано",
	"msg.updated":           "Обновлено",
	"msg.deleted":           "Удалено",
	"msg.invalid_id":        "Неверный идентификатор",
	"msg.invalid_payload":   "Неверные данные запроса",
	"msg.invalid_query":     "Неверные параметры запроса",
	"msg.not_found":         "Данные не найдены",
	"msg.validation_failed": "Ошибка проверки данных",
	"msg.unknown_entity":    "Неизвестная сущность: {0}",
	"msg.unauthorized":      "Требуется авторизация",
	"msg.forbidden":         "Недостаточно прав для этого действия",
	"msg.permission_needed": "Требуется разрешение: {0}",
	"msg.rate_limited":      "Слишком много запросов. Попробуйте позже.",

	"msg.db.fk_violation":     "Связанная запись не существует",
	"msg.db.unique_violation": "Дублирующиеся данные",
	"msg.db.check_violation":  "Значение нарушает ограничение базы данных",
	"msg.db.error":            "Ошибка базы данных",

	"msg.login.ok":       "Вход выполнен",
	"msg.login.invalid":  "Неверный логин или пароль",
	"msg.login.inactive": "Учётная запись отключена",
	"msg.logout.ok":      "Выход выполнен",
	"msg.user.created":   "Пользователь создан",
	"msg.user.updated":   "Пользователь обновлён",

	"msg.genre.created":          "Жанр создан",
	"msg.genre.updated":          "Жанр обновлён",
	"msg.genre.deleted":          "Жанр удалён",
	"msg.author.created":         "Автор создан",
	"msg.author.updated":         "Автор обновлён",
	"msg.author.deleted":         "Автор удалён",
	"msg.book.created":           "Книга создана",
	"msg.book.updated":           "Книга обновлена",
	"msg.book.deleted":           "Книга удалена",
	"msg.book.unknown_genres":    "Неизвестные жанры: {0}",
	"msg.book_instance.created":  "Экземпляр создан",
	"msg.book_instance.updated":  "Экземпляр обновлён",
	"msg.book_instance.deleted":  "Экземпляр удалён",
	"msg.book_instance.returned": "Книга отмечена как возвращённая",
	"msg.book_instance.renewed":  "Срок возврата продлён",

	"author.date_of_birth.too_young":  "Автор должен быть старше 18 лет.",
	"author.date_of_death.not_past":   "Дата смерти не может быть позднее чем вчера.",
	"book_instance.due_back.past":     "Неверная дата - продление в прошлом.",
	"book_instance.due_back.too_far":  "Неверная дата - продление более чем на {0} недели вперёд.",
	"book_instance.due_back.required": "Укажите дату возврата.",
	"date.invalid":                    "Дата должна быть в формате ГГГГ-ММ-ДД.",

	"status.m": "На обслуживании",
	"status.o": "Выдана",
	"status.a": "Доступна",
	"status.r": "Зарезервирована",

	"permission.can_mark_returned": "Отметить книгу как возвращённую",

	"entity.genre":         "Жанр",
	"entity.author":        "Автор",
	"entity.book":          "Книга",
	"entity.book_instance": "Экземпляр книги",

	"field.genre.name.label":                "Название",
	"field.genre.name.help":                 "Введите жанр книги (например, научная фантастика, французская поэзия и т. д.)",
	"field.author.first_name.label":         "Имя",
	"field.author.last_name.label":          "Фамилия",
	"field.author.date_of_birth.label":      "Дата рождения",
	"field.author.date_of_death.label":      "Дата смерти",
	"field.book.title.label":                "Название",
	"field.book.author_id.label":            "Автор",
	"field.book.summary.label":              "Краткое описание",
	"field.book.summary.help":               "Введите краткое описание книги",
	"field.book.isbn.label":                 "ISBN",
	"field.book.isbn.help":                  "13-символьный номер ISBN",
	"field.book.genre_ids.label":            "Жанр",
	"field.book.genre_ids.help":             "Выберите жанр для этой книги",
	"field.book_instance.id.label":          "ID",
	"field.book_instance.id.help":           "Уникальный ID этого экземпляра во всей библиотеке",
	"field.book_instance.book_id.label":     "Книга",
	"field.book_instance.imprint.label":     "Выходные данные",
	"field.book_instance.due_back.label":    "Вернуть до",
	"field.book_instance.status.label":      "Статус",
	"field.book_instance.status.help":       "Доступность книги",
	"field.book_instance.borrower_id.label": "Читатель",
}
