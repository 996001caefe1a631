package common

import "testing"

func TestValidateNotEmpty(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid", "src/a.ts", false},
		{"empty", "", true},
		{"whitespace", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNotEmpty(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNotEmpty() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTargetPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"relative file", "src/api-server.ts", false},
		{"absolute file", "/srv/app/src/strategies.ts", false},
		{"dot prefix", "./src/production-test.ts", false},
		{"empty", "", true},
		{"glob star", "src/*.ts", true},
		{"glob question", "src/a?.ts", true},
		{"glob class", "src/[ab].ts", true},
		{"directory", "src/", true},
		{"nul byte", "src/a\x00.ts", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTargetPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTargetPath() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTargetList(t *testing.T) {
	tests := []struct {
		name    string
		list    string
		wantErr bool
	}{
		{"single", "src/a.ts", false},
		{"several with spaces", "src/a.ts, src/b.ts ,lib/c.ts", false},
		{"trailing comma", "src/a.ts,", false},
		{"empty", "", true},
		{"glob entry", "src/a.ts,src/*.ts", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTargetList(tt.list)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTargetList() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateBaseDir(t *testing.T) {
	tests := []struct {
		name    string
		dir     string
		wantErr bool
	}{
		{"current", ".", false},
		{"absolute", "/srv/collector", false},
		{"empty", "", true},
		{"nul byte", "/srv\x00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBaseDir(tt.dir)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBaseDir() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
