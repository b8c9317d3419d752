package models

import "time"

/*
Table "public.classes"
    Column    |           Type           | Nullable | Default
--------------+--------------------------+----------+---------
 id           | bigint                   | not null | nextval('classes_id_seq')
 namespace_id | bigint                   | not null |
 name         | character varying(80)    | not null |
 description  | character varying(4096)  | not null |
 enabled      | boolean                  | not null | true
 created_at   | timestamp with time zone | not null | now()
 updated_at   | timestamp with time zone |          |
Indexes:
    "classes_pkey" PRIMARY KEY, btree (id)
    "classes_namespace_id_name_key" UNIQUE, btree (namespace_id, lower(name))
Foreign-key constraints:
    "classes_namespace_id_fkey" FOREIGN KEY (namespace_id) REFERENCES namespaces(id)
*/

type Class struct {
	ID          int64      `db:"id"`
	NamespaceID int64      `db:"namespace_id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	Enabled     bool       `db:"enabled"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
}
