package models

import "time"

/*
Table "public.instances"
   Column   |           Type           | Nullable | Default
------------+--------------------------+----------+---------
 id         | bigint                   | not null | nextval('instances_id_seq')
 class_id   | bigint                   | not null |
 name       | character varying(80)    |          |
 data       | jsonb                    | not null |
 enabled    | boolean                  | not null | true
 created_at | timestamp with time zone | not null | now()
 updated_at | timestamp with time zone |          |
Indexes:
    "instances_pkey" PRIMARY KEY, btree (id)
    "instances_class_id_idx" btree (class_id)
Foreign-key constraints:
    "instances_class_id_fkey" FOREIGN KEY (class_id) REFERENCES classes(id)
*/

type Instance struct {
	ID        int64      `db:"id"`
	ClassID   int64      `db:"class_id"`
	Name      string     `db:"name"`
	Data      []byte     `db:"data"`
	Enabled   bool       `db:"enabled"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}
