package js

import (
	"strings"
	"testing"
)

var data = []byte("2 + 3**2 - 3*5 + 10 - 10 * 5 / 4")

var benchSource = []byte(strings.Repeat(`
import { readFile } from "fs";

export async function load(path, { encoding = "utf8", ...rest } = {}) {
	const text = await readFile(path, encoding);
	for (const [i, line] of text.split("\n").entries()) {
		if (/^\s*#/.test(line) || line === "") continue;
		rest[i] = line.length > 80 ? line.slice(0, 80) + "…" : line;
	}
	return new Map(Object.entries(rest).map(([k, v]) => [k, v?.trim() ?? ""]));
}

class Cache extends Map {
	#hits = 0;
	get(key) { this.#hits++; return super.get(key); }
	static create = () => new Cache();
}
`, 20))

var benchSourceTS = []byte(strings.Repeat(`
export interface Options<T extends object = {}> {
	readonly name: string;
	values?: Array<T>;
	map<U>(f: (x: T, i: number) => U): U[];
}

type Keys<T> = { [K in keyof T]-?: T[K] extends Function ? never : K }[keyof T];

export abstract class Store<T> implements Options<T> {
	constructor(public readonly name: string, private items: T[] = []) {}
	abstract map<U>(f: (x: T, i: number) => U): U[];
	get size(): number { return this.items.length as number; }
}

const store = <T,>(name: string) => ({ name } satisfies Partial<Options<T>>);
`, 20))

func BenchmarkExpression(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Parse(data, Options{SourceType: Script})
	}
}

func BenchmarkLexer(b *testing.B) {
	b.SetBytes(int64(len(benchSource)))
	for i := 0; i < b.N; i++ {
		l := NewLexer(benchSource, Module)
		for l.Next().Kind != EOFToken {
		}
	}
}

func BenchmarkParse(b *testing.B) {
	b.SetBytes(int64(len(benchSource)))
	for i := 0; i < b.N; i++ {
		Parse(benchSource, Options{SourceType: Module})
	}
}

func BenchmarkParseTypeScript(b *testing.B) {
	b.SetBytes(int64(len(benchSourceTS)))
	for i := 0; i < b.N; i++ {
		Parse(benchSourceTS, Options{SourceType: TS})
	}
}

func TestBenchSources(t *testing.T) {
	if _, ds, _ := Parse(benchSource, Options{SourceType: Module}); len(ds) != 0 {
		t.Fatal(ds[0].Position(benchSource))
	}
	if _, ds, _ := Parse(benchSourceTS, Options{SourceType: TS}); len(ds) != 0 {
		t.Fatal(ds[0].Position(benchSourceTS))
	}
}
