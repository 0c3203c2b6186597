package catalog

import "github.com/dmitrymomot/regexbook/pkg/pattern"

func unixPathDomain() pattern.Domain {
	return pattern.Domain{
		Key:         "unix-path",
		Title:       "Unix path",
		Description: "Absolute POSIX file system paths.",
		Variants: []pattern.Variant{
			{
				ID:          "recommended",
				Title:       "Absolute path",
				Source:      `^\/(?:[^\/\x00]+\/)*[^\/\x00]*$`,
				Description: "Starts at the root, no empty segments, optional trailing slash, no NUL bytes.",
				Cases: []pattern.Case{
					{Input: "/", Expected: true, Note: "root"},
					{Input: "/usr/bin", Expected: true},
					{Input: "/usr/bin/", Expected: true, Note: "trailing slash"},
					{Input: "/home/user/.config/app.conf", Expected: true},
					{Input: "/tmp/my file.txt", Expected: true, Note: "spaces are legal"},
					{Input: "/var/log/../tmp", Expected: true, Note: "dot segments are not resolved"},
					{Input: "usr/bin", Expected: false, Note: "relative"},
					{Input: "./script.sh", Expected: false, Note: "relative"},
					{Input: "//usr", Expected: false, Note: "empty segment"},
					{Input: "/usr//bin", Expected: false, Note: "empty segment"},
					{Input: "/usr/b\x00in", Expected: false, Note: "NUL byte"},
					{Input: "", Expected: false},
				},
			},
		},
	}
}

func windowsPathDomain() pattern.Domain {
	return pattern.Domain{
		Key:         "windows-path",
		Title:       "Windows path",
		Description: "Absolute Windows file system paths with a drive letter.",
		Variants: []pattern.Variant{
			{
				ID:          "recommended",
				Title:       "Absolute path",
				Source:      `^[a-zA-Z]:\\(?:[^\\\/:*?"<>|\r\n]+\\)*[^\\\/:*?"<>|\r\n]*$`,
				Description: "Drive letter, colon, backslash, then segments free of reserved characters.",
				Cases: []pattern.Case{
					{Input: "C:\\", Expected: true, Note: "drive root"},
					{Input: "C:\\Users\\Public", Expected: true},
					{Input: "d:\\Projects\\report.docx", Expected: true},
					{Input: "C:\\Program Files\\App\\", Expected: true, Note: "trailing backslash"},
					{Input: "C:", Expected: false, Note: "no root"},
					{Input: "C:/Users/Public", Expected: false, Note: "forward slashes"},
					{Input: "\\\\server\\share", Expected: false, Note: "UNC paths are not accepted"},
					{Input: "C:\\Users\\a|b", Expected: false, Note: "reserved character"},
					{Input: "C:\\Users\\file?.txt", Expected: false, Note: "reserved character"},
					{Input: "C:\\Users\\\\Public", Expected: false, Note: "empty segment"},
					{Input: "1:\\Temp", Expected: false, Note: "drive must be a letter"},
					{Input: "Users\\Public", Expected: false, Note: "relative"},
					{Input: "", Expected: false},
				},
			},
		},
	}
}
