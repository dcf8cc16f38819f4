package mongodb

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/smarthr-api/internal/domain/entity"
	"github.com/jhoicas/smarthr-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// Alias de campo acumulados por las distintas herramientas que escribieron
// la colección de empleados a lo largo de los años.
var (
	codeAliases = []string{"emp_id", "employeeCode", "employee_id", "EmpID"}
	nameAliases = []string{"full_name", "fullName", "fullname", "name"}
	deptAliases = []string{"dept", "department", "department_name"}
)

// EmployeeRepo implementación del puerto EmployeeRepository sobre MongoDB.
type EmployeeRepo struct {
	col *mongo.Collection
}

// NewEmployeeRepository construye el adaptador de persistencia de empleados.
func NewEmployeeRepository(db *mongo.Database) *EmployeeRepo {
	return &EmployeeRepo{col: db.Collection(colEmployees)}
}

func codeFilter(code string) bson.M {
	or := make(bson.A, len(codeAliases))
	for i, a := range codeAliases {
		or[i] = bson.M{a: code}
	}
	return bson.M{"$or": or}
}

func nameFilter(pattern string) bson.M {
	or := make(bson.A, len(nameAliases))
	for i, a := range nameAliases {
		or[i] = bson.M{a: bson.M{"$regex": pattern, "$options": "i"}}
	}
	return bson.M{"$or": or}
}

func decodeEmployee(doc bson.M) *entity.Employee {
	return &entity.Employee{
		EmpID:     pickString(doc, codeAliases...),
		FullName:  pickString(doc, nameAliases...),
		Email:     pickString(doc, "email", "Email"),
		Dept:      pickString(doc, deptAliases...),
		Embedding: toFloat32Slice(doc["faceEmbedding"]),
	}
}

// FindByCode busca por identificador de empleado en todos sus alias.
func (r *EmployeeRepo) FindByCode(code string) (*entity.Employee, error) {
	var doc bson.M
	err := r.col.FindOne(context.Background(), codeFilter(code)).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar empleado %s: %w", code, err)
	}
	return decodeEmployee(doc), nil
}

// FindByNameExact nombre completo exacto, case-insensitive.
func (r *EmployeeRepo) FindByNameExact(name string) ([]*entity.Employee, error) {
	return r.findByName("^" + regexp.QuoteMeta(name) + "$")
}

// FindByNamePrefix prefijo de nombre, case-insensitive.
func (r *EmployeeRepo) FindByNamePrefix(name string) ([]*entity.Employee, error) {
	return r.findByName("^" + regexp.QuoteMeta(name))
}

func (r *EmployeeRepo) findByName(pattern string) ([]*entity.Employee, error) {
	ctx := context.Background()
	cur, err := r.col.Find(ctx, nameFilter(pattern))
	if err != nil {
		return nil, fmt.Errorf("buscar empleados por nombre: %w", err)
	}
	defer cur.Close(ctx)

	var out []*entity.Employee
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, decodeEmployee(doc))
	}
	return out, cur.Err()
}

// ListEnrolled empleados con embedding facial almacenado.
func (r *EmployeeRepo) ListEnrolled() ([]*entity.Employee, error) {
	ctx := context.Background()
	cur, err := r.col.Find(ctx, bson.M{"faceEmbedding": bson.M{"$type": "array"}})
	if err != nil {
		return nil, fmt.Errorf("listar enrolados: %w", err)
	}
	defer cur.Close(ctx)

	var out []*entity.Employee
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, decodeEmployee(doc))
	}
	return out, cur.Err()
}

// UpsertEmbedding fija el embedding del empleado, creando el documento si
// no existe.
func (r *EmployeeRepo) UpsertEmbedding(code string, embedding []float32) error {
	arr := make(bson.A, len(embedding))
	for i, v := range embedding {
		arr[i] = float64(v)
	}
	_, err := r.col.UpdateOne(
		context.Background(),
		bson.M{"employeeCode": code},
		bson.M{
			"$set":         bson.M{"faceEmbedding": arr},
			"$setOnInsert": bson.M{"emp_id": code},
		},
		mongoUpsert(),
	)
	if err != nil {
		return fmt.Errorf("guardar embedding de %s: %w", code, err)
	}
	return nil
}

// FullNamesByCodes mapa code -> nombre para el join de los rankings.
func (r *EmployeeRepo) FullNamesByCodes(codes []string) (map[string]string, error) {
	if len(codes) == 0 {
		return map[string]string{}, nil
	}
	or := make(bson.A, len(codeAliases))
	for i, a := range codeAliases {
		or[i] = bson.M{a: bson.M{"$in": codes}}
	}

	ctx := context.Background()
	cur, err := r.col.Find(ctx, bson.M{"$or": or})
	if err != nil {
		return nil, fmt.Errorf("buscar nombres por códigos: %w", err)
	}
	defer cur.Close(ctx)

	out := make(map[string]string, len(codes))
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		code := pickString(doc, codeAliases...)
		name := pickString(doc, nameAliases...)
		if code != "" && name != "" {
			out[code] = name
		}
	}
	return out, cur.Err()
}

// Count total de empleados.
func (r *EmployeeRepo) Count() (int64, error) {
	return r.col.CountDocuments(context.Background(), bson.M{})
}

// CountByDept empleados de un departamento, resolviendo alias de campo.
func (r *EmployeeRepo) CountByDept(dept string) (int64, error) {
	pattern := "^" + regexp.QuoteMeta(dept) + "$"
	or := make(bson.A, len(deptAliases))
	for i, a := range deptAliases {
		or[i] = bson.M{a: bson.M{"$regex": pattern, "$options": "i"}}
	}
	return r.col.CountDocuments(context.Background(), bson.M{"$or": or})
}
