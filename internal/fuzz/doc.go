// Package fuzztests houses Go fuzz harnesses for the front end
// (source -> lexer -> surface/core parser). They guard against panics,
// hangs and span corruption on arbitrary bytes.
//
// Не делает: генерацию корпусов, запись файлов, запуск CLI.
package fuzztests
