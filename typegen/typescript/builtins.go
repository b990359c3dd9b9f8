package typescript

// Extensions carries raw field declarations appended to the built-in interfaces.
// Each non-empty value is inserted verbatim on its own line before the closing brace.
type Extensions struct {
	User        string
	Role        string
	Media       string
	MediaFormat string
	FindOne     string
	FindMany    string
}

// Builtin is a fixed interface emitted alongside the schema models
type Builtin struct {
	// Name is the declared interface name
	Name string
	// ListingName keys the interface-string map
	ListingName string
	// FileName is the multi-file output name
	FileName string
	// Imports are names the file needs in multi-file mode
	Imports []string
	// Body is the rendered declaration
	Body string
}

// Names declared by the built-in templates. Single-file import blocks never reference them.
var BuiltinNames = map[string]bool{
	"Media":       true,
	"MediaFormat": true,
	"User":        true,
	"Role":        true,
	"FindOne":     true,
	"FindMany":    true,
}

// Builtins returns the built-in interfaces in emission order:
// Media (with MediaFormat), User, Role, FindOne, FindMany.
func Builtins(ext Extensions) []Builtin {
	return []Builtin{
		{
			Name:        "Media",
			ListingName: "Media",
			FileName:    "media.ts",
			Body:        mediaBody(ext.Media) + "\n" + mediaFormatBody(ext.MediaFormat),
		},
		{
			Name:        "User",
			ListingName: "User",
			FileName:    "user.ts",
			Imports:     []string{"Role"},
			Body:        userBody(ext.User),
		},
		{
			Name:        "Role",
			ListingName: "Role",
			FileName:    "role.ts",
			Body:        roleBody(ext.Role),
		},
		{
			Name:        "FindOne",
			ListingName: "FindOnePayload",
			FileName:    "findOnePayload.ts",
			Body:        findOneBody(ext.FindOne),
		},
		{
			Name:        "FindMany",
			ListingName: "FindManyPayload",
			FileName:    "findManyPayload.ts",
			Body:        findManyBody(ext.FindMany),
		},
	}
}

// extend renders the optional custom block that follows the last fixed member
func extend(custom string) string {
	if custom == "" {
		return ""
	}
	return "\n  " + custom
}

func userBody(custom string) string {
	return `export interface User {
  id?: number;
  username: string;
  email: string;
  provider?: string;
  confirmed?: boolean;
  blocked?: boolean;
  createdAt?: Date | string;
  updatedAt?: Date | string;
  role: Role | null | number;` + extend(custom) + `
};
`
}

func roleBody(custom string) string {
	return `export interface Role {
  id?: number;
  documentId?: string;
  createdAt?: Date | string;
  updatedAt?: Date | string;
  name: string;
  description: string;
  type: string;` + extend(custom) + `
};
`
}

const paginationMeta = `
  meta: {
    pagination?: {
      page: number;
      pageSize: number;
      pageCount: number;
      total: number;
    };
  };`

func findOneBody(custom string) string {
	return `export interface FindOne<T> {
  data: T;` + paginationMeta + extend(custom) + `
};
`
}

func findManyBody(custom string) string {
	return `export interface FindMany<T> {
  data: T[];` + paginationMeta + extend(custom) + `
};
`
}

func mediaBody(custom string) string {
	return `export interface Media {
  id: number;
  name: string;
  alternativeText: string;
  caption: string;
  width: number;
  height: number;
  formats: { thumbnail: MediaFormat; small: MediaFormat; medium: MediaFormat; large: MediaFormat; };
  hash: string;
  ext: string;
  mime: string;
  size: number;
  url: string;
  previewUrl: string;
  provider: string;
  createdAt: Date;
  updatedAt: Date;` + extend(custom) + `
}
`
}

func mediaFormatBody(custom string) string {
	return `export interface MediaFormat {
  name: string;
  hash: string;
  ext: string;
  mime: string;
  width: number;
  height: number;
  size: number;
  path: string;
  url: string;` + extend(custom) + `
}
`
}
