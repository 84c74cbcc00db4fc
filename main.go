package main

import (
	"context"
	"fmt"
	"os"

	"github.com/meavi1994/go-ordered-dict/baserepo"
	"github.com/meavi1994/go-ordered-dict/ordereddict"
)

type User struct {
	baserepo.BaseModel
	Name string
	Age  int
}

// Implement Entity interface
func (u *User) GetBase() *baserepo.BaseModel {
	return &u.BaseModel
}

func main() {
	// The ordered dictionary on its own.
	d := ordereddict.New[int, string]()
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		d.Add(k, fmt.Sprintf("value-%d", k))
	}

	fmt.Println("in order:")
	for k, v := range d.All() {
		fmt.Println(" ", k, "=>", v)
	}

	// Lookup-or-create mutates on a miss.
	*d.GetOrInsert(6) = "value-6"
	fmt.Println("has 6 after GetOrInsert:", d.Has(6))

	d.Remove(5)
	fmt.Println("after remove(5):", d)

	// Iterate from an arbitrary key.
	for it := d.BeginAt(7); it != d.End(); it = it.Next() {
		fmt.Println("  from 7:", it.Key())
	}

	fmt.Println("tree shape:")
	d.DumpTo(os.Stdout)

	// The dictionary as a unique repository index.
	ctx := context.Background()
	userRepo := baserepo.NewRepo[*User]()
	byName := baserepo.NewUniqueIndex(
		func(u *User) string { return u.Name },
		func(a, b string) bool { return a < b },
	)
	userRepo.AddIndex(ctx, "by_name", byName)

	for _, u := range []*User{
		{Name: "carol", Age: 41},
		{Name: "alice", Age: 30},
		{Name: "bob", Age: 25},
	} {
		if _, err := userRepo.Create(ctx, u); err != nil {
			fmt.Println("create failed:", err)
		}
	}

	if _, err := userRepo.Create(ctx, &User{Name: "alice", Age: 99}); err != nil {
		fmt.Println("duplicate rejected:", err)
	}

	fmt.Println("users by name:")
	byName.Ascend(ctx, func(u *User) bool {
		fmt.Println(" ", u.Name, u.Age)
		return true
	})
}
