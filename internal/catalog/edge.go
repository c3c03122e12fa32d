package catalog

import "strings"

// Edge-case categories in declaration order.
const (
	SpecialChar       Category = "special-char"
	UnicodeEmoji      Category = "unicode-emoji"
	DotPrefix         Category = "dot-prefix"
	SpacePrefix       Category = "space-prefix"
	NumericDate       Category = "numeric-date"
	ReservedLike      Category = "reserved-like"
	PathLike          Category = "path-like"
	QuoteEscape       Category = "quote-escape"
	CommandLike       Category = "command-like"
	LongName          Category = "long-name"
	PunctuationRepeat Category = "punctuation-repeat"
)

// longRun pads the long-name category. Kept under 100 characters per name so
// the category probes length handling without tripping the common 255-byte
// component limit.
var longRun = strings.Repeat("x", 80)

var edgeTable = []group{
	{SpecialChar, []string{
		"!important_file.txt",
		"@symbol_start.txt",
		"#hash_beginning.txt",
		"$dollar_first.txt",
		"%percent_start.txt",
		"^caret_file.txt",
		"&ampersand_first.txt",
		"*asterisk_start.txt",
		"(paren_file.txt",
		")close_paren.txt",
		"+plus_start.txt",
		"=equals_first.txt",
		"[bracket_file.txt",
		"]close_bracket.txt",
		"{brace_start.txt",
	}},
	{UnicodeEmoji, []string{
		"🚀rocket_launch.txt",
		"📁folder_icon.txt",
		"💻computer_file.txt",
		"🎵music_note.txt",
		"🌟star_file.txt",
		"文档.txt",
		"файл.txt",
		"café_menu.txt",
		"naïve_approach.txt",
		"résumé.txt",
		"ñoño.txt",
		"ürlaub.txt",
	}},
	{DotPrefix, []string{
		".hidden_file",
		"..parent_reference",
		"...triple_dot",
		". space_after_dot.txt",
		".tar.gz.backup",
		".DS_Store",
		".gitignore",
		".env.local",
	}},
	{SpacePrefix, []string{
		" leading_space.txt",
		"  double_space.txt",
		"   triple_space.txt",
		" .space_dot.txt",
		" hidden_after_space",
		"  multiple_issues .txt",
		" 123_number.txt",
		" CAPS_AFTER_SPACE.txt",
	}},
	{NumericDate, []string{
		"0001_zero_pad.txt",
		"1file.txt",
		"2024-01-01_date.txt",
		"3.14159_pi.txt",
		"42_answer.txt",
		"100%_complete.txt",
		"999_high_number.txt",
		"0xFF_hex.txt",
		"1e10_scientific.txt",
		"-42_negative.txt",
	}},
	// Lookalikes of device names; the real ones (CON, PRN, AUX, NUL, COM1,
	// LPT1) break checkouts on Windows.
	{ReservedLike, []string{
		"CONSOLE.txt",
		"PRINTER.txt",
		"AUXILIARY.txt",
		"NULL_FILE.txt",
		"SERIAL1.txt",
		"SERIAL2.txt",
		"PARALLEL1.txt",
		"PARALLEL2.txt",
	}},
	{PathLike, []string{
		"~home_file.txt",
		"$variable_name.txt",
		"backslash_start.txt",
		"slash_start.txt",
		"parent_dir.txt",
		"current_dir.txt",
		"|pipe_start.txt",
		"less_than.txt",
		"greater_than.txt",
		"?question_mark.txt",
	}},
	{QuoteEscape, []string{
		`"quoted_file.txt`,
		"'single_quote.txt",
		"`backtick_file.txt",
		"backslash_file.txt",
		"double_escape_file.txt",
		"newline_start.txt",
		"tab_start.txt",
		"return_start.txt",
	}},
	{CommandLike, []string{
		"rm -rf *",
		"del *.txt",
		"format c:",
		"sudo rm file",
		"cmd.exe",
		"bash.sh",
		"powershell.ps1",
		"script.bat",
		"run.exe",
		"install.msi",
	}},
	{LongName, []string{
		"!" + longRun + ".txt",
		" " + longRun + ".txt",
		"." + longRun,
		"$" + longRun + ".txt",
		"#" + longRun + ".txt",
		"🚀" + longRun + ".txt",
	}},
	{PunctuationRepeat, []string{
		";;semicolon_double.txt",
		"::colon_double.txt",
		"---triple_dash.txt",
		"___triple_under.txt",
		"~~~tilde_triple.txt",
	}},
}
