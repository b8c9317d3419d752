package models

import "time"

/*
Table "public.properties"
   Column    |           Type           | Nullable | Default
-------------+--------------------------+----------+---------
 id          | bigint                   | not null | nextval('properties_id_seq')
 name        | character varying(80)    | not null |
 description | character varying(4096)  | not null |
 field_id    | bigint                   | not null |
 enabled     | boolean                  | not null | true
 created_at  | timestamp with time zone | not null | now()
 updated_at  | timestamp with time zone |          |
Indexes:
    "properties_pkey" PRIMARY KEY, btree (id)
    "properties_name_key" UNIQUE, btree (lower(name))
Foreign-key constraints:
    "properties_field_id_fkey" FOREIGN KEY (field_id) REFERENCES fields(id)
*/

type Property struct {
	ID          int64      `db:"id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	FieldID     int64      `db:"field_id"`
	Enabled     bool       `db:"enabled"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
}

/*
Table "public.object_properties"
       Column       |           Type           | Nullable | Default
--------------------+--------------------------+----------+---------
 id                 | bigint                   | not null | nextval('object_properties_id_seq')
 parent_property_id | bigint                   | not null |
 child_property_id  | bigint                   | not null |
 required           | boolean                  | not null | false
 enabled            | boolean                  | not null | true
 created_at         | timestamp with time zone | not null | now()
 updated_at         | timestamp with time zone |          |
Indexes:
    "object_properties_pkey" PRIMARY KEY, btree (id)
    "object_properties_parent_child_key" UNIQUE, btree (parent_property_id, child_property_id)
Check constraints:
    "object_properties_check" CHECK (parent_property_id <> child_property_id)
*/

type ObjectProperty struct {
	ID               int64      `db:"id"`
	ParentPropertyID int64      `db:"parent_property_id"`
	ChildPropertyID  int64      `db:"child_property_id"`
	Required         bool       `db:"required"`
	Enabled          bool       `db:"enabled"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        *time.Time `db:"updated_at"`
}

/*
Table "public.class_properties"
   Column    |           Type           | Nullable | Default
-------------+--------------------------+----------+---------
 id          | bigint                   | not null | nextval('class_properties_id_seq')
 class_id    | bigint                   | not null |
 property_id | bigint                   | not null |
 required    | boolean                  | not null | false
 enabled     | boolean                  | not null | true
 created_at  | timestamp with time zone | not null | now()
 updated_at  | timestamp with time zone |          |
Indexes:
    "class_properties_pkey" PRIMARY KEY, btree (id)
    "class_properties_class_id_property_id_key" UNIQUE, btree (class_id, property_id)
*/

type ClassProperty struct {
	ID         int64      `db:"id"`
	ClassID    int64      `db:"class_id"`
	PropertyID int64      `db:"property_id"`
	Required   bool       `db:"required"`
	Enabled    bool       `db:"enabled"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  *time.Time `db:"updated_at"`
}
