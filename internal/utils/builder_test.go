package querybuilder

import (
	"reflect"
	"strings"
	"testing"
)

func TestBuildSelect(t *testing.T) {
	query, args := NewQueryBuilder("public").
		Select("id", "name").
		From("users").
		Where("google_id = ?", "gg-1").
		Build()

	want := "SELECT id, name FROM public.users WHERE google_id = ?"
	if query != want {
		t.Errorf("query = %q, want %q", query, want)
	}
	if !reflect.DeepEqual(args, []interface{}{"gg-1"}) {
		t.Errorf("args = %v, want [gg-1]", args)
	}
}

func TestBuildSelectWithJoinAndOrder(t *testing.T) {
	query, _ := NewQueryBuilder("public").
		Select("c.id", "r.name AS room_name").
		From("classes c").
		Join(JoinTypeInner, "public.rooms", "r", "r.id = c.room_id").
		OrderBy("c.day", true).
		OrderBy("c.period", false).
		Build()

	want := "SELECT c.id, r.name AS room_name FROM public.classes c" +
		" INNER JOIN public.rooms r ON r.id = c.room_id" +
		" ORDER BY c.day ASC, c.period DESC"
	if query != want {
		t.Errorf("query = %q, want %q", query, want)
	}
}

func TestBuildSelectConditionChaining(t *testing.T) {
	query, args := NewQueryBuilder("public").
		Select("id").
		From("classes").
		Where("day = ?", 2).
		And("period = ?", 3).
		Or("room_id = ?", "r1").
		Build()

	want := "SELECT id FROM public.classes WHERE day = ? AND period = ? OR room_id = ?"
	if query != want {
		t.Errorf("query = %q, want %q", query, want)
	}
	if !reflect.DeepEqual(args, []interface{}{2, 3, "r1"}) {
		t.Errorf("args = %v", args)
	}
}

func TestBuildInsertUpsert(t *testing.T) {
	query, args := NewQueryBuilder("public").
		Into("user_timetables").
		Insert("user_id", "day", "period", "class_id").
		Values("u1", 0, 1, "c1").
		OnConflict("user_id", "day", "period").
		SetExclude("class_id").
		Build()

	want := "INSERT INTO public.user_timetables (user_id, day, period, class_id)" +
		" VALUES (?, ?, ?, ?)" +
		" ON CONFLICT (user_id, day, period) DO UPDATE SET class_id = EXCLUDED.class_id"
	if query != want {
		t.Errorf("query = %q, want %q", query, want)
	}
	if !reflect.DeepEqual(args, []interface{}{"u1", 0, 1, "c1"}) {
		t.Errorf("args = %v", args)
	}
}

func TestBuildInsertDoNothing(t *testing.T) {
	query, args := NewQueryBuilder("public").
		Into("rooms").
		Insert("id", "name").
		Values("r1", "Main Hall").
		Values("r2", "Lab 2").
		OnConflict("id").
		DoNothing().
		Build()

	want := "INSERT INTO public.rooms (id, name) VALUES (?, ?), (?, ?) ON CONFLICT (id) DO NOTHING"
	if query != want {
		t.Errorf("query = %q, want %q", query, want)
	}
	if len(args) != 4 {
		t.Errorf("args count = %d, want 4", len(args))
	}
}

func TestBuildInsertMismatchedRow(t *testing.T) {
	query, args := NewQueryBuilder("public").
		Into("rooms").
		Insert("id", "name").
		Values("r1").
		Build()

	if query != "" || args != nil {
		t.Errorf("mismatched row should yield empty query, got %q / %v", query, args)
	}
}

func TestBuildUpdate(t *testing.T) {
	query, args := NewQueryBuilder("public").
		Update("users", UpdateData{"token_digest": "abc"}).
		Where("id = ?", "u1").
		Build()

	want := "UPDATE public.users SET token_digest = ? WHERE id = ?"
	if query != want {
		t.Errorf("query = %q, want %q", query, want)
	}
	if !reflect.DeepEqual(args, []interface{}{"abc", "u1"}) {
		t.Errorf("args = %v", args)
	}
}

func TestBuildUpdateMultipleColumns(t *testing.T) {
	query, args := NewQueryBuilder("public").
		Update("users", UpdateData{"name": "alice", "picture": "p.png"}).
		Where("id = ?", "u1").
		Build()

	// map iteration order varies, assert structure instead of exact text
	if !strings.HasPrefix(query, "UPDATE public.users SET ") {
		t.Errorf("unexpected prefix in %q", query)
	}
	if !strings.Contains(query, "name = ?") || !strings.Contains(query, "picture = ?") {
		t.Errorf("missing set clauses in %q", query)
	}
	if !strings.HasSuffix(query, " WHERE id = ?") {
		t.Errorf("missing where clause in %q", query)
	}
	if len(args) != 3 {
		t.Errorf("args count = %d, want 3", len(args))
	}
}
