// Package format prints surface modules as canonical DDL source.
//
// Назначение: `ddl fmt` и вывод `ddl delab`.
// Не делает: сохранение обычных `//` комментариев и исходных пробелов;
// output is re-derived from the tree.
package format
