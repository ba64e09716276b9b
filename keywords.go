package glcompose

import "strings"

// glslKeywords lists GLSL keywords, reserved words, built-in types, variables
// and functions up to GLSL 1.30, grouped loosely by kind. "main" is absent
// so that every stage entry point may be named main.
const glslKeywords = `
attribute const uniform varying centroid invariant flat smooth noperspective
layout in out inout lowp mediump highp precision
break continue do for while switch case default if else discard return
true false struct void bool int uint float
vec2 vec3 vec4 ivec2 ivec3 ivec4 uvec2 uvec3 uvec4 bvec2 bvec3 bvec4
mat2 mat3 mat4 mat2x2 mat2x3 mat2x4 mat3x2 mat3x3 mat3x4 mat4x2 mat4x3 mat4x4
sampler1D sampler2D sampler3D samplerCube sampler1DShadow sampler2DShadow
sampler1DArray sampler2DArray sampler1DArrayShadow sampler2DArrayShadow samplerCubeShadow
isampler1D isampler2D isampler3D isamplerCube isampler1DArray isampler2DArray
usampler1D usampler2D usampler3D usamplerCube usampler1DArray usampler2DArray
sampler2DRect sampler2DRectShadow samplerBuffer

asm class union enum typedef template this packed goto inline noinline volatile
public static extern external interface long short double half fixed unsigned superp
input output hvec2 hvec3 hvec4 dvec2 dvec3 dvec4 fvec2 fvec3 fvec4
sampler3DRect filter image1D image2D image3D imageCube
iimage1D iimage2D iimage3D iimageCube uimage1D uimage2D uimage3D uimageCube
image1DArray image2DArray iimage1DArray iimage2DArray uimage1DArray uimage2DArray
image1DShadow image2DShadow image1DArrayShadow image2DArrayShadow imageBuffer
iimageBuffer uimageBuffer sizeof cast namespace using row_major

gl_Position gl_PointSize gl_ClipVertex gl_ClipDistance gl_VertexID gl_InstanceID
gl_FragCoord gl_FrontFacing gl_PointCoord gl_FragColor gl_FragData gl_FragDepth
gl_Color gl_SecondaryColor gl_Normal gl_Vertex gl_MultiTexCoord0 gl_FogCoord
gl_TexCoord gl_FrontColor gl_BackColor gl_FogFragCoord
gl_ModelViewMatrix gl_ProjectionMatrix gl_ModelViewProjectionMatrix gl_NormalMatrix
gl_MaxVertexAttribs gl_MaxVertexUniformComponents gl_MaxVaryingFloats
gl_MaxTextureUnits gl_MaxTextureCoords gl_MaxDrawBuffers gl_MaxTextureImageUnits

radians degrees sin cos tan asin acos atan sinh cosh tanh asinh acosh atanh
pow exp log exp2 log2 sqrt inversesqrt abs sign floor trunc round roundEven
ceil fract mod modf min max clamp mix step smoothstep isnan isinf
length distance dot cross normalize ftransform faceforward reflect refract
matrixCompMult outerProduct transpose
lessThan lessThanEqual greaterThan greaterThanEqual equal notEqual any all not
texture texture1D texture2D texture3D textureCube texture2DProj texture2DLod
textureSize texelFetch textureLod textureGrad textureOffset shadow2D
dFdx dFdy fwidth noise1 noise2 noise3 noise4
`

// DefaultKeywords returns the reserved identifiers a [Compiler] is seeded with
// when [CompilerConfig.Keywords] is nil.
func DefaultKeywords() []string {
	return strings.Fields(glslKeywords)
}
