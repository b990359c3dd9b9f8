package typescript

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltins_Order(t *testing.T) {
	var names, listing, files []string
	for _, b := range Builtins(Extensions{}) {
		names = append(names, b.Name)
		listing = append(listing, b.ListingName)
		files = append(files, b.FileName)
	}

	assert.Equal(t, []string{"Media", "User", "Role", "FindOne", "FindMany"}, names)
	assert.Equal(t, []string{"Media", "User", "Role", "FindOnePayload", "FindManyPayload"}, listing)
	assert.Equal(t, []string{"media.ts", "user.ts", "role.ts", "findOnePayload.ts", "findManyPayload.ts"}, files)
}

func TestBuiltins_Templates(t *testing.T) {
	builtins := Builtins(Extensions{})

	role := builtins[2].Body
	assert.Equal(t, `export interface Role {
  id?: number;
  documentId?: string;
  createdAt?: Date | string;
  updatedAt?: Date | string;
  name: string;
  description: string;
  type: string;
};
`, role)

	findMany := builtins[4].Body
	assert.Equal(t, `export interface FindMany<T> {
  data: T[];
  meta: {
    pagination?: {
      page: number;
      pageSize: number;
      pageCount: number;
      total: number;
    };
  };
};
`, findMany)

	media := builtins[0].Body
	assert.True(t, strings.HasPrefix(media, "export interface Media {\n  id: number;\n"))
	assert.Contains(t, media, "  updatedAt: Date;\n}\n\nexport interface MediaFormat {\n")
	assert.True(t, strings.HasSuffix(media, "  url: string;\n}\n"))
}

func TestBuiltins_Extensions(t *testing.T) {
	ext := Extensions{
		User:        "firstName?: string;\n  lastName?: string;",
		Role:        "customField?: boolean;",
		Media:       "blurhash?: string;",
		MediaFormat: "webp?: string;",
		FindOne:     "error?: unknown;",
		FindMany:    "error?: unknown;",
	}
	builtins := Builtins(ext)
	require.Len(t, builtins, 5)

	assert.Contains(t, builtins[1].Body, "  role: Role | null | number;\n  firstName?: string;\n  lastName?: string;\n};\n")
	assert.Contains(t, builtins[2].Body, "  type: string;\n  customField?: boolean;\n};\n")
	assert.Contains(t, builtins[0].Body, "  updatedAt: Date;\n  blurhash?: string;\n}\n")
	assert.Contains(t, builtins[0].Body, "  url: string;\n  webp?: string;\n}\n")
	assert.Contains(t, builtins[3].Body, "  };\n  error?: unknown;\n};\n")
	assert.Contains(t, builtins[4].Body, "  data: T[];")
	assert.Contains(t, builtins[4].Body, "  };\n  error?: unknown;\n};\n")
}

func TestBuiltinNames(t *testing.T) {
	for _, name := range []string{"Media", "MediaFormat", "User", "Role", "FindOne", "FindMany"} {
		assert.True(t, BuiltinNames[name], name)
	}
	assert.False(t, BuiltinNames["FindOnePayload"])
}
