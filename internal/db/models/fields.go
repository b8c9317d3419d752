package models

import "time"

/*
Table "public.fields"
    Column     |           Type           | Nullable | Default
---------------+--------------------------+----------+---------
 id            | bigint                   | not null | nextval('fields_id_seq')
 name          | character varying(80)    | not null |
 description   | character varying(4096)  | not null |
 default_value | jsonb                    |          |
 enabled       | boolean                  | not null | true
 data_type_id  | bigint                   | not null |
 created_at    | timestamp with time zone | not null | now()
 updated_at    | timestamp with time zone |          |
Indexes:
    "fields_pkey" PRIMARY KEY, btree (id)
    "fields_name_key" UNIQUE, btree (lower(name))
Foreign-key constraints:
    "fields_data_type_id_fkey" FOREIGN KEY (data_type_id) REFERENCES data_types(id)
*/

type Field struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	// DefaultValue is raw JSON, nil when unset.
	DefaultValue []byte `db:"default_value"`
	Enabled      bool   `db:"enabled"`
	DataTypeID   int64  `db:"data_type_id"`
	// DataTypeName is joined from data_types on read.
	DataTypeName string     `db:"data_type_name"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at"`
}
