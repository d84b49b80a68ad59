package indent

import (
	"regexp"

	"github.com/fwojciec/editcore"
)

// defaultRules builds the built-in rule tables. TypeScript shares the
// JavaScript rules; file types without an entry fall back to inheriting the
// previous line's indent.
func defaultRules() map[editcore.FileType]Rule {
	js := javascriptRule()
	return map[editcore.FileType]Rule{
		editcore.FileTypePython:     pythonRule(),
		editcore.FileTypeRust:       rustRule(),
		editcore.FileTypeJavaScript: js,
		editcore.FileTypeTypeScript: js,
		editcore.FileTypeHTML:       htmlRule(),
		editcore.FileTypeCSS:        cssRule(),
		editcore.FileTypeYAML:       yamlRule(),
	}
}

func pythonRule() Rule {
	return Rule{
		Increase: []*regexp.Regexp{
			regexp.MustCompile(`:\s*(?:#.*)?$`), // def, if, for, while, class
			regexp.MustCompile(`^\s*@\w+`),      // decorators
		},
		Decrease: []*regexp.Regexp{
			regexp.MustCompile(`^\s*(elif|else|except|finally|break|continue|pass|return)\b`),
		},
		DecreaseIncrease: []*regexp.Regexp{
			regexp.MustCompile(`^\s*(elif|else|except|finally).*:\s*(?:#.*)?$`),
		},
		Exceptions: []Exception{
			// A top-level main guard keeps the next line at column zero.
			{
				Pattern:    regexp.MustCompile(`\b__name__\b.*\b__main__\b`),
				AtTopLevel: true,
				Column:     0,
			},
		},
	}
}

func rustRule() Rule {
	return Rule{
		Increase: []*regexp.Regexp{
			regexp.MustCompile(`\{\s*(?://.*)?$`), // opening brace
			regexp.MustCompile(`=>\s*(?://.*)?$`), // match arms without braces
		},
		Decrease: []*regexp.Regexp{
			regexp.MustCompile(`^\s*\}`),
		},
		DecreaseIncrease: []*regexp.Regexp{
			regexp.MustCompile(`^\s*\}\s*else\s*\{`),
		},
	}
}

func javascriptRule() Rule {
	return Rule{
		Increase: []*regexp.Regexp{
			regexp.MustCompile(`\{\s*(?://.*)?$`), // opening brace
			regexp.MustCompile(`=>\s*(?://.*)?$`), // arrow functions
		},
		Decrease: []*regexp.Regexp{
			regexp.MustCompile(`^\s*\}`),
		},
		DecreaseIncrease: []*regexp.Regexp{
			regexp.MustCompile(`^\s*\}\s*else\s*\{`),
			regexp.MustCompile(`^\s*\}\s*catch\s*\(`),
			regexp.MustCompile(`^\s*\}\s*finally\s*\{`),
		},
	}
}

func htmlRule() Rule {
	return Rule{
		Increase: []*regexp.Regexp{
			regexp.MustCompile(`<[a-zA-Z][^/>]*>$`),
			regexp.MustCompile(`<(div|p|ul|ol|li|table|tr|td|th|head|body|html|section|article|nav|aside|header|footer|main)[^>]*>`),
		},
		Decrease: []*regexp.Regexp{
			regexp.MustCompile(`^\s*</`),
		},
	}
}

func cssRule() Rule {
	return Rule{
		Increase: []*regexp.Regexp{
			regexp.MustCompile(`\{\s*(?:/\*.*\*/\s*)?$`),
		},
		Decrease: []*regexp.Regexp{
			regexp.MustCompile(`^\s*\}`),
		},
	}
}

func yamlRule() Rule {
	return Rule{
		Increase: []*regexp.Regexp{
			regexp.MustCompile(`:\s*$`),          // key:
			regexp.MustCompile(`:\s*\|`),         // literal block scalar
			regexp.MustCompile(`:\s*>`),          // folded block scalar
			regexp.MustCompile(`^\s*-\s*$`),      // bare list item
			regexp.MustCompile(`^\s*-\s+\w+:\s*$`), // list item opening a map
		},
		// Indentation in YAML only ever dedents explicitly, so there are no
		// decrease patterns.
	}
}
