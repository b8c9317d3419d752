package models

import "time"

/*
Table "public.data_types"
      Column       |           Type           | Nullable | Default
-------------------+--------------------------+----------+---------
 id                | bigint                   | not null | nextval('data_types_id_seq')
 name              | character varying(80)    | not null |
 description       | character varying(4096)  | not null |
 enabled           | boolean                  | not null | true
 is_array          | boolean                  | not null | false
 data_type         | character varying(16)    | not null |
 pattern           | character varying(4096)  |          |
 max_length        | integer                  | not null | 0
 enum_values       | text[]                   |          |
 enum_descriptions | text[]                   |          |
 examples          | text[]                   |          |
 core_type         | boolean                  | not null | false
 created_at        | timestamp with time zone | not null | now()
 updated_at        | timestamp with time zone |          |
Indexes:
    "data_types_pkey" PRIMARY KEY, btree (id)
    "data_types_name_key" UNIQUE, btree (lower(name))
Check constraints:
    "data_types_max_length_check" CHECK (max_length >= 0)
*/

type DataType struct {
	ID               int64      `db:"id"`
	Name             string     `db:"name"`
	Description      string     `db:"description"`
	Enabled          bool       `db:"enabled"`
	IsArray          bool       `db:"is_array"`
	Kind             string     `db:"data_type"`
	Pattern          string     `db:"pattern"`
	MaxLength        int        `db:"max_length"`
	EnumValues       []string   `db:"enum_values"`
	EnumDescriptions []string   `db:"enum_descriptions"`
	Examples         []string   `db:"examples"`
	CoreType         bool       `db:"core_type"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        *time.Time `db:"updated_at"`
}
