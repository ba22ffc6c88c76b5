package postgres

import sq "github.com/Masterminds/squirrel"

// Builder is a squirrel statement builder using $n placeholders.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
