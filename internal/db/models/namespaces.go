package models

import "time"

/*
Table "public.namespaces"
     Column     |           Type           | Nullable | Default
----------------+--------------------------+----------+---------
 id             | bigint                   | not null | nextval('namespaces_id_seq')
 name           | character varying(80)    | not null |
 description    | character varying(4096)  | not null |
 enabled        | boolean                  | not null | true
 core_namespace | boolean                  | not null | false
 created_at     | timestamp with time zone | not null | now()
 updated_at     | timestamp with time zone |          |
Indexes:
    "namespaces_pkey" PRIMARY KEY, btree (id)
    "namespaces_name_key" UNIQUE, btree (lower(name))
Referenced by:
    TABLE "classes" CONSTRAINT "classes_namespace_id_fkey" FOREIGN KEY (namespace_id) REFERENCES namespaces(id)
*/

type Namespace struct {
	ID            int64      `db:"id"`
	Name          string     `db:"name"`
	Description   string     `db:"description"`
	Enabled       bool       `db:"enabled"`
	CoreNamespace bool       `db:"core_namespace"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at"`
}
